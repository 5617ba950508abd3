package api

import (
	"net/http"

	"github.com/hauswerk/dokuhilfe/internal/doku/compose"
	"github.com/hauswerk/dokuhilfe/internal/doku/selection"
)

type composeSelection struct {
	CategoryID string `json:"categoryId"`
	Choice     string `json:"choice"`
}

// composeBehavior replays the submitted selections through a fresh ledger and
// renders the behavior text against the stored categories.
func (h *handler) composeBehavior(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Selections        []composeSelection `json:"selections"`
		PersonName        string             `json:"personName"`
		DocumentingPerson string             `json:"documentingPerson"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	stored, err := h.store.ListWorkBehaviorCategories(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	labels := make(map[string]string, len(stored))
	categories := make([]compose.Category, 0, len(stored))
	for _, category := range stored {
		labels[category.ID] = category.Label
		categories = append(categories, compose.Category{
			ID:      category.ID,
			Label:   category.Label,
			Choices: category.Choices,
		})
	}

	ledger := selection.NewLedger()
	for _, sel := range body.Selections {
		ledger.Toggle(sel.CategoryID, labels[sel.CategoryID], sel.Choice)
	}
	output := compose.BehaviorText(ledger.Selections(), categories, body.PersonName, body.DocumentingPerson)
	writeJSON(w, http.StatusOK, map[string]string{
		"header": output.Header,
		"text":   output.Text,
	})
}

func (h *handler) composeActivity(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ActivityID        string `json:"activityId"`
		PersonName        string `json:"personName"`
		DocumentingPerson string `json:"documentingPerson"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.ActivityID == "" {
		writeJSONError(w, http.StatusBadRequest, "activityId is required")
		return
	}
	activity, err := h.store.GetActivity(r.Context(), body.ActivityID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	output := compose.ActivityText(compose.Activity{
		Title:       activity.Title,
		Description: activity.Description,
		Measure:     activity.Measure,
	}, body.PersonName, body.DocumentingPerson)
	writeJSON(w, http.StatusOK, map[string]string{
		"title":        output.Title,
		"documentedBy": output.DocumentedBy,
		"description":  output.Description,
		"measure":      output.Measure,
	})
}
