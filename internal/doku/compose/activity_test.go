package compose

import "testing"

func TestActivityText(t *testing.T) {
	activity := Activity{
		Title:       "Materialvorbereitung",
		Description: "Vorbereitung der Materialien für den Montageprozess",
		Measure:     "GL stellt erforderliches Material bereit und überprüft Vollständigkeit",
	}

	out := ActivityText(activity, "Tom Berg", "Eva Klein")
	if out.Title != activity.Title {
		t.Fatalf("title = %q, want %q", out.Title, activity.Title)
	}
	if out.DocumentedBy != "Klein, Eva" {
		t.Fatalf("documented by = %q, want %q", out.DocumentedBy, "Klein, Eva")
	}
	want := "Eva Klein (GL): Tom Berg (BE) Vorbereitung der Materialien für den Montageprozess"
	if out.Description != want {
		t.Fatalf("description = %q, want %q", out.Description, want)
	}
	if out.Measure != activity.Measure {
		t.Fatalf("measure = %q, want %q", out.Measure, activity.Measure)
	}
}

func TestActivityTextMissingDocumenter(t *testing.T) {
	out := ActivityText(Activity{Title: "T", Description: "D", Measure: "M"}, "Tom Berg", "")
	if out.DocumentedBy != NamePlaceholder {
		t.Fatalf("documented by = %q, want placeholder", out.DocumentedBy)
	}
	want := "[Name nicht angegeben] (GL): Tom Berg (BE) D"
	if out.Description != want {
		t.Fatalf("description = %q, want %q", out.Description, want)
	}
}
