package seed

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/hauswerk/dokuhilfe/internal/storage/sqlite"
)

func TestCategoriesShape(t *testing.T) {
	categories := Categories()
	if len(categories) != 18 {
		t.Fatalf("len(Categories()) = %d, want 18", len(categories))
	}
	for _, category := range categories {
		if category.Label == "" || category.Positive == "" || category.Negative == "" {
			t.Fatalf("incomplete category: %+v", category)
		}
	}
	if categories[0].Label != "🧠 1. Konzentration" {
		t.Fatalf("Categories()[0].Label = %q", categories[0].Label)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "doku.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()
	ctx := context.Background()

	if err := Apply(ctx, store); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if err := Apply(ctx, store); err != nil {
		t.Fatalf("second Apply() error = %v", err)
	}

	categories, err := store.ListWorkBehaviorCategories(ctx)
	if err != nil {
		t.Fatalf("ListWorkBehaviorCategories() error = %v", err)
	}
	if len(categories) != 18 {
		t.Fatalf("len(categories) = %d, want 18", len(categories))
	}
	areas, err := store.ListActivityAreas(ctx)
	if err != nil {
		t.Fatalf("ListActivityAreas() error = %v", err)
	}
	if len(areas) != 2 {
		t.Fatalf("len(areas) = %d, want 2", len(areas))
	}
	if areas[0].Name != "Montage" || areas[1].Name != "Verpackung" {
		t.Fatalf("areas = %v", areas)
	}
	activities, err := store.ListActivitiesByArea(ctx, areas[0].ID)
	if err != nil {
		t.Fatalf("ListActivitiesByArea() error = %v", err)
	}
	if len(activities) != 1 || activities[0].Title != "Materialvorbereitung" {
		t.Fatalf("activities = %v", activities)
	}
}

func TestApplyCategoriesSkipsNonEmptyStore(t *testing.T) {
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "doku.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()
	ctx := context.Background()

	if _, err := store.CreateWorkBehaviorCategory(ctx, "Eigene Kategorie", "positiv", "negativ"); err != nil {
		t.Fatalf("CreateWorkBehaviorCategory() error = %v", err)
	}
	if err := ApplyCategories(ctx, store); err != nil {
		t.Fatalf("ApplyCategories() error = %v", err)
	}
	categories, err := store.ListWorkBehaviorCategories(ctx)
	if err != nil {
		t.Fatalf("ListWorkBehaviorCategories() error = %v", err)
	}
	if len(categories) != 1 {
		t.Fatalf("len(categories) = %d, want 1", len(categories))
	}
}
