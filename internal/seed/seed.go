// Package seed installs the default documentation dataset.
package seed

import (
	"context"
	"fmt"

	"github.com/hauswerk/dokuhilfe/internal/storage"
)

// Category is one default work-behavior dimension with its positive and
// negative phrasing.
type Category struct {
	Label    string
	Positive string
	Negative string
}

// Categories returns the default work-behavior categories in display order.
func Categories() []Category {
	return []Category{
		{
			Label:    "🧠 1. Konzentration",
			Positive: "zeigt eine gute Konzentrationsfähigkeit.",
			Negative: "zeigt eine eingeschränkte Konzentrationsfähigkeit.",
		},
		{
			Label:    "🔥 2. Motivation",
			Positive: "arbeitet mit einer guten Motivation.",
			Negative: "zeigt eine geringe Motivation.",
		},
		{
			Label:    "✓ 3. Sorgfalt",
			Positive: "arbeitet sorgfältig und genau.",
			Negative: "arbeitet ungenau und wenig sorgfältig.",
		},
		{
			Label:    "😊 4. Gemütslage",
			Positive: "wirkt im Arbeitsalltag ausgeglichen und stabil.",
			Negative: "wirkt im Arbeitsalltag unausgeglichen oder labil.",
		},
		{
			Label:    "👥 5. Teamfähigkeit",
			Positive: "arbeitet gut und kooperativ im Team.",
			Negative: "zeigt Schwierigkeiten in der Zusammenarbeit im Team.",
		},
		{
			Label:    "💬 6. Umgang mit Kritik",
			Positive: "nimmt Kritik offen an und setzt Rückmeldungen um.",
			Negative: "zeigt Schwierigkeiten im Umgang mit Kritik.",
		},
		{
			Label:    "⏰ 7. Pünktlichkeit",
			Positive: "kommt pünktlich zur Arbeit.",
			Negative: "kommt verspätet zur Arbeit.",
		},
		{
			Label:    "🏋️ 8. Durchhaltevermögen / Belastbarkeit",
			Positive: "zeigt ein gutes Durchhaltevermögen und bleibt auch bei Belastung handlungsfähig.",
			Negative: "zeigt ein geringes Durchhaltevermögen und wirkt bei Belastung schnell überfordert.",
		},
		{
			Label:    "😓 9. Frustrationstoleranz",
			Positive: "geht mit Rückschlägen und Misserfolgen gelassen um.",
			Negative: "zeigt eine geringe Frustrationstoleranz und reagiert schnell entmutigt.",
		},
		{
			Label:    "⚡ 10. Arbeitsgeschwindigkeit",
			Positive: "arbeitet in einem angemessenen Tempo.",
			Negative: "arbeitet zu langsam / zu hastig.",
		},
		{
			Label:    "✅ 11. Zuverlässigkeit",
			Positive: "erledigt Aufgaben zuverlässig und gewissenhaft.",
			Negative: "erledigt Aufgaben unzuverlässig oder unvollständig.",
		},
		{
			Label:    "📏 12. Einhaltung von Regeln und Anweisungen",
			Positive: "hält sich an Regeln und befolgt Anweisungen.",
			Negative: "hat Schwierigkeiten, Regeln einzuhalten oder Anweisungen umzusetzen.",
		},
		{
			Label:    "👋 13. Respektvoller Umgang",
			Positive: "begegnet anderen freundlich und respektvoll.",
			Negative: "zeigt wenig Respekt im Umgang mit anderen.",
		},
		{
			Label:    "🔄 14. Flexibilität / Anpassungsfähigkeit",
			Positive: "passt sich flexibel an Veränderungen im Arbeitsablauf an.",
			Negative: "zeigt Schwierigkeiten bei der Anpassung an veränderte Arbeitsabläufe.",
		},
		{
			Label:    "🚀 15. Eigeninitiative",
			Positive: "erkennt und übernimmt Aufgaben eigenständig.",
			Negative: "benötigt häufig eine Aufforderung zur Übernahme von Aufgaben.",
		},
		{
			Label:    "📚 16. Lernbereitschaft",
			Positive: "zeigt Interesse und Bereitschaft, neue Fertigkeiten zu erlernen.",
			Negative: "zeigt wenig Interesse an der Erweiterung ihrer/seiner Fähigkeiten.",
		},
		{
			Label:    "🧩 17. Problemlösungsfähigkeit",
			Positive: "erkennt Probleme und findet eigenständig Lösungsansätze.",
			Negative: "zeigt Schwierigkeiten beim Erkennen und Lösen von Problemen.",
		},
		{
			Label:    "🗣 18. Kommunikation",
			Positive: "kommuniziert offen und klar.",
			Negative: "zeigt Unsicherheiten oder Zurückhaltung in der Kommunikation.",
		},
	}
}

// ApplyCategories installs the default work-behavior categories when none
// exist. Stores that already hold categories are left untouched.
func ApplyCategories(ctx context.Context, store storage.WorkBehaviorCategoryStore) error {
	existing, err := store.ListWorkBehaviorCategories(ctx)
	if err != nil {
		return fmt.Errorf("check existing categories: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	for _, category := range Categories() {
		if _, err := store.CreateWorkBehaviorCategory(ctx,
			category.Label, category.Positive, category.Negative); err != nil {
			return fmt.Errorf("seed category %q: %w", category.Label, err)
		}
	}
	return nil
}

// ApplyAreas installs the default activity areas and the starter activity
// when no areas exist.
func ApplyAreas(ctx context.Context, store storage.Store) error {
	existing, err := store.ListActivityAreas(ctx)
	if err != nil {
		return fmt.Errorf("check existing areas: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	montage, err := store.CreateActivityArea(ctx, "Montage")
	if err != nil {
		return fmt.Errorf("seed area: %w", err)
	}
	if _, err := store.CreateActivityArea(ctx, "Verpackung"); err != nil {
		return fmt.Errorf("seed area: %w", err)
	}
	if _, err := store.CreateActivity(ctx, storage.Activity{
		AreaID:      montage.ID,
		Title:       "Materialvorbereitung",
		Description: "Vorbereitung der Materialien für den Montageprozess",
		Measure:     "GL stellt erforderliches Material bereit und überprüft Vollständigkeit",
	}); err != nil {
		return fmt.Errorf("seed activity: %w", err)
	}
	return nil
}

// Apply installs every default the application ships with.
func Apply(ctx context.Context, store storage.Store) error {
	if err := ApplyCategories(ctx, store); err != nil {
		return err
	}
	return ApplyAreas(ctx, store)
}
