package transfer

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/hauswerk/dokuhilfe/internal/storage"
)

func TestDocumentRoundTrip(t *testing.T) {
	completed := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	snapshot := storage.Snapshot{
		Persons: []storage.Person{
			{ID: "p1", Name: "Anna Schmidt", Order: 0},
			{ID: "p2", Name: "Bernd Maier", Order: 1},
		},
		Categories: []storage.WorkBehaviorCategory{
			{ID: "c1", Label: "🧠 1. Konzentration", Choices: []string{"positiv", "negativ"}, Order: 0},
		},
		Areas: []storage.ActivityArea{
			{ID: "a1", Name: "Montage", Order: 0},
		},
		Activities: []storage.Activity{
			{ID: "t1", AreaID: "a1", Title: "Teile sortieren", Measure: "Anleitung", Order: 0},
		},
		Goals: []storage.Goal{
			{ID: "g1", PersonID: "p1", Title: "Ziel", DueDate: "2026-12-31",
				Status: storage.GoalStatusCompleted, Order: 0, CompletedAt: &completed},
		},
	}

	data, err := json.Marshal(FromSnapshot(snapshot))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	restored, legacy, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if legacy {
		t.Fatal("Decode() reported legacy for current format")
	}
	if len(restored.Persons) != 2 || restored.Persons[1].Order != 1 {
		t.Fatalf("restored.Persons = %v", restored.Persons)
	}
	if restored.Categories[0].Label != "🧠 1. Konzentration" {
		t.Fatalf("restored category label = %q", restored.Categories[0].Label)
	}
	goal := restored.Goals[0]
	if goal.DueDate != "2026-12-31" || goal.Status != storage.GoalStatusCompleted {
		t.Fatalf("restored goal = %+v", goal)
	}
	if goal.CompletedAt == nil || !goal.CompletedAt.Equal(completed) {
		t.Fatalf("restored CompletedAt = %v, want %v", goal.CompletedAt, completed)
	}
}

func TestFromSnapshotWritesStringOrders(t *testing.T) {
	document := FromSnapshot(storage.Snapshot{
		Persons: []storage.Person{{ID: "p1", Name: "Anna", Order: 3}},
	})
	if document.Persons[0].Order != "3" {
		t.Fatalf("Order = %q, want %q", document.Persons[0].Order, "3")
	}
	// Empty collections marshal as [] rather than null.
	data, err := json.Marshal(document)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var generic map[string]json.RawMessage
	if err := json.Unmarshal(data, &generic); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	for _, key := range []string{"workBehaviorCategories", "activityAreas", "activities", "goals"} {
		if string(generic[key]) != "[]" {
			t.Fatalf("%s = %s, want []", key, generic[key])
		}
	}
}

func TestToSnapshotFallsBackToIndexOrder(t *testing.T) {
	snapshot := ToSnapshot(Document{
		Persons: []PersonRecord{
			{ID: "p1", Name: "Anna", Order: "kaputt"},
			{ID: "p2", Name: "Bernd", Order: "7"},
		},
	})
	if snapshot.Persons[0].Order != 0 {
		t.Fatalf("unparseable Order = %d, want index 0", snapshot.Persons[0].Order)
	}
	if snapshot.Persons[1].Order != 7 {
		t.Fatalf("Order = %d, want 7", snapshot.Persons[1].Order)
	}
}

func TestDecodeLegacyDocument(t *testing.T) {
	data := []byte(`{
		"nameList": ["Anna Müller", "  ", "Bernd Maier"],
		"taetigkeiten": {
			"Montage": ["Teile sortieren", "", "Schrauben zählen"],
			"": ["verwaist"],
			"Verpackung": ["Kartons falten"]
		},
		"ziele": [
			{"text": "Selbstständig arbeiten", "datum": "1.3.2026"},
			{"text": "   ", "datum": "02.04.2026"},
			{"text": "Pünktlich sein", "datum": ""}
		]
	}`)

	snapshot, legacy, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !legacy {
		t.Fatal("Decode() did not report legacy format")
	}

	if len(snapshot.Persons) != 2 {
		t.Fatalf("len(Persons) = %d, want 2", len(snapshot.Persons))
	}
	if snapshot.Persons[0].ID != "legacy-0-anna-muller" {
		t.Fatalf("Persons[0].ID = %q", snapshot.Persons[0].ID)
	}
	if snapshot.Persons[1].Name != "Bernd Maier" || snapshot.Persons[1].Order != 1 {
		t.Fatalf("Persons[1] = %+v", snapshot.Persons[1])
	}

	if len(snapshot.Areas) != 2 {
		t.Fatalf("len(Areas) = %d, want 2", len(snapshot.Areas))
	}
	if snapshot.Areas[0].ID != "legacy-area-0-montage" || snapshot.Areas[1].Name != "Verpackung" {
		t.Fatalf("Areas = %v", snapshot.Areas)
	}
	if len(snapshot.Activities) != 3 {
		t.Fatalf("len(Activities) = %d, want 3", len(snapshot.Activities))
	}
	second := snapshot.Activities[1]
	if second.ID != "legacy-activity-0-1-schrauben-zahlen" {
		t.Fatalf("Activities[1].ID = %q", second.ID)
	}
	if second.Description != second.Title {
		t.Fatalf("legacy activity Description = %q, want copied title", second.Description)
	}
	if snapshot.Activities[2].AreaID != snapshot.Areas[1].ID {
		t.Fatalf("Activities[2].AreaID = %q, want %q", snapshot.Activities[2].AreaID, snapshot.Areas[1].ID)
	}

	if len(snapshot.Goals) != 2 {
		t.Fatalf("len(Goals) = %d, want 2", len(snapshot.Goals))
	}
	if snapshot.Goals[0].DueDate != "2026-03-01" {
		t.Fatalf("Goals[0].DueDate = %q, want 2026-03-01", snapshot.Goals[0].DueDate)
	}
	if snapshot.Goals[1].DueDate != "" || snapshot.Goals[1].Status != storage.GoalStatusOpen {
		t.Fatalf("Goals[1] = %+v", snapshot.Goals[1])
	}
	// Legacy documents carry no categories; the caller keeps the current ones.
	if snapshot.Categories != nil {
		t.Fatalf("Categories = %v, want nil", snapshot.Categories)
	}
}

func TestDecodeRejectsInvalidJSON(t *testing.T) {
	if _, _, err := Decode([]byte("{nope")); err == nil {
		t.Fatal("Decode(invalid) error = nil, want error")
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Anna Müller", "anna-muller"},
		{"Schrauben zählen", "schrauben-zahlen"},
		{"Qualität & Präzision", "qualitat-prazision"},
		{"  mehrere   Leerzeichen  ", "-mehrere-leerzeichen-"},
		{"ÄÖÜß", "aou"},
	}
	for _, tt := range tests {
		if got := Slug(tt.in); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConvertLegacyDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"31.12.2026", "2026-12-31"},
		{"1.3.2026", "2026-03-01"},
		{"2026-12-31", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := convertLegacyDate(tt.in); got != tt.want {
			t.Errorf("convertLegacyDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
