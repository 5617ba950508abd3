package compose

import (
	"testing"

	"github.com/hauswerk/dokuhilfe/internal/doku/selection"
)

var testCategories = []Category{
	{ID: "1", Label: "🧠 1. Konzentration", Choices: []string{"zeigt gute Konzentration.", "zeigt wenig Konzentration."}},
	{ID: "2", Label: "🔥 2. Motivation", Choices: []string{"ist motiviert.", "ist unmotiviert."}},
	{ID: "3", Label: "⏰ 7. Pünktlichkeit", Choices: []string{"kommt pünktlich zur Arbeit.", "kommt verspätet zur Arbeit."}},
}

func TestCleanLabel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"🧠 1. Konzentration", "Konzentration"},
		{"🏋️ 8. Durchhaltevermögen / Belastbarkeit", "Durchhaltevermögen / Belastbarkeit"},
		{"Konzentration", "Konzentration"},
		{"🗣 18. Kommunikation", "Kommunikation"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanLabel(tt.input); got != tt.want {
			t.Fatalf("CleanLabel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBehaviorTextEndToEnd(t *testing.T) {
	l := selection.NewLedger()
	l.Toggle("1", "🧠 1. Konzentration", "zeigt gute Konzentration.")
	l.Toggle("2", "🔥 2. Motivation", "ist unmotiviert.")

	out := BehaviorText(l.Selections(), testCategories, "Tom Berg", "Eva Klein")
	if out.Header != "Konzentration +" {
		t.Fatalf("header = %q, want %q", out.Header, "Konzentration +")
	}
	want := "Eva Klein (GL): Tom Berg (BE) zeigt gute Konzentration und ist unmotiviert."
	if out.Text != want {
		t.Fatalf("text = %q, want %q", out.Text, want)
	}
}

func TestBehaviorTextSingleFragment(t *testing.T) {
	l := selection.NewLedger()
	l.Toggle("2", "🔥 2. Motivation", "ist unmotiviert.")

	out := BehaviorText(l.Selections(), testCategories, "Tom Berg", "Eva Klein")
	if out.Header != "Motivation -" {
		t.Fatalf("header = %q, want %q", out.Header, "Motivation -")
	}
	want := "Eva Klein (GL): Tom Berg (BE) ist unmotiviert."
	if out.Text != want {
		t.Fatalf("text = %q, want %q", out.Text, want)
	}
}

func TestBehaviorTextThreeFragments(t *testing.T) {
	l := selection.NewLedger()
	l.Toggle("1", "🧠 1. Konzentration", "zeigt gute Konzentration.")
	l.Toggle("2", "🔥 2. Motivation", "ist motiviert.")
	l.Toggle("3", "⏰ 7. Pünktlichkeit", "kommt verspätet zur Arbeit.")

	out := BehaviorText(l.Selections(), testCategories, "Tom Berg", "Eva Klein")
	want := "Eva Klein (GL): Tom Berg (BE) zeigt gute Konzentration, ist motiviert und kommt verspätet zur Arbeit."
	if out.Text != want {
		t.Fatalf("text = %q, want %q", out.Text, want)
	}
}

func TestBehaviorTextHeaderFollowsFirstSelectionOnly(t *testing.T) {
	l := selection.NewLedger()
	l.Toggle("1", "🧠 1. Konzentration", "zeigt gute Konzentration.")
	l.Toggle("2", "🔥 2. Motivation", "ist motiviert.")

	before := BehaviorText(l.Selections(), testCategories, "Tom Berg", "Eva Klein")

	// Flipping the polarity of a later category must not move the header.
	l.Toggle("2", "🔥 2. Motivation", "ist unmotiviert.")
	after := BehaviorText(l.Selections(), testCategories, "Tom Berg", "Eva Klein")

	if before.Header != after.Header {
		t.Fatalf("header changed from %q to %q", before.Header, after.Header)
	}
}

func TestBehaviorTextUnknownCategoryDefaultsPositive(t *testing.T) {
	l := selection.NewLedger()
	l.Toggle("99", "Geheimnis", "tut etwas")

	out := BehaviorText(l.Selections(), testCategories, "Tom Berg", "Eva Klein")
	if out.Header != "Geheimnis +" {
		t.Fatalf("header = %q, want %q", out.Header, "Geheimnis +")
	}
}

func TestBehaviorTextMissingDocumenterUsesPlaceholder(t *testing.T) {
	l := selection.NewLedger()
	l.Toggle("1", "🧠 1. Konzentration", "zeigt gute Konzentration.")

	out := BehaviorText(l.Selections(), testCategories, "Tom Berg", "")
	want := "[Name nicht angegeben] (GL): Tom Berg (BE) zeigt gute Konzentration."
	if out.Text != want {
		t.Fatalf("text = %q, want %q", out.Text, want)
	}
}

func TestBehaviorTextEmptySelections(t *testing.T) {
	out := BehaviorText(nil, testCategories, "Tom Berg", "Eva Klein")
	if out.Header != "" || out.Text != "" {
		t.Fatalf("empty selections should produce empty output, got %+v", out)
	}
}
