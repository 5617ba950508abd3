package api

import (
	"net/http"

	"github.com/hauswerk/dokuhilfe/internal/storage"
)

type categoryPayload struct {
	ID       string   `json:"id"`
	Category string   `json:"category"`
	Choices  []string `json:"choices"`
	Order    int      `json:"order"`
}

func categoryToPayload(category storage.WorkBehaviorCategory) categoryPayload {
	return categoryPayload{
		ID:       category.ID,
		Category: category.Label,
		Choices:  category.Choices,
		Order:    category.Order,
	}
}

type categoryRequest struct {
	Category string   `json:"category"`
	Choices  []string `json:"choices"`
}

func (body categoryRequest) validate(w http.ResponseWriter) (label, positive, negative string, ok bool) {
	if body.Category == "" {
		writeJSONError(w, http.StatusBadRequest, "category is required")
		return "", "", "", false
	}
	if len(body.Choices) != 2 || body.Choices[0] == "" || body.Choices[1] == "" {
		writeJSONError(w, http.StatusBadRequest, "choices must hold a positive and a negative phrasing")
		return "", "", "", false
	}
	return body.Category, body.Choices[0], body.Choices[1], true
}

func (h *handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.store.ListWorkBehaviorCategories(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	payload := make([]categoryPayload, 0, len(categories))
	for _, category := range categories {
		payload = append(payload, categoryToPayload(category))
	}
	writeJSON(w, http.StatusOK, payload)
}

func (h *handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var body categoryRequest
	if !decodeBody(w, r, &body) {
		return
	}
	label, positive, negative, ok := body.validate(w)
	if !ok {
		return
	}
	category, err := h.store.CreateWorkBehaviorCategory(r.Context(), label, positive, negative)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, categoryToPayload(category))
}

func (h *handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	var body categoryRequest
	if !decodeBody(w, r, &body) {
		return
	}
	label, positive, negative, ok := body.validate(w)
	if !ok {
		return
	}
	category, err := h.store.UpdateWorkBehaviorCategory(r.Context(), r.PathValue("id"), label, positive, negative)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categoryToPayload(category))
}

func (h *handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteWorkBehaviorCategory(r.Context(), r.PathValue("id")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) moveCategoryUp(w http.ResponseWriter, r *http.Request) {
	h.writeMove(w, r, h.store.MoveWorkBehaviorCategoryUp)
}

func (h *handler) moveCategoryDown(w http.ResponseWriter, r *http.Request) {
	h.writeMove(w, r, h.store.MoveWorkBehaviorCategoryDown)
}
