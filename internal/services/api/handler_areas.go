package api

import (
	"net/http"

	"github.com/hauswerk/dokuhilfe/internal/storage"
)

type areaPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

func areaToPayload(area storage.ActivityArea) areaPayload {
	return areaPayload{ID: area.ID, Name: area.Name, Order: area.Order}
}

func (h *handler) listAreas(w http.ResponseWriter, r *http.Request) {
	areas, err := h.store.ListActivityAreas(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	payload := make([]areaPayload, 0, len(areas))
	for _, area := range areas {
		payload = append(payload, areaToPayload(area))
	}
	writeJSON(w, http.StatusOK, payload)
}

func (h *handler) createArea(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Name == "" {
		writeJSONError(w, http.StatusBadRequest, "name is required")
		return
	}
	area, err := h.store.CreateActivityArea(r.Context(), body.Name)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, areaToPayload(area))
}

func (h *handler) renameArea(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Name == "" {
		writeJSONError(w, http.StatusBadRequest, "name is required")
		return
	}
	area, err := h.store.RenameActivityArea(r.Context(), r.PathValue("id"), body.Name)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, areaToPayload(area))
}

func (h *handler) deleteArea(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteActivityArea(r.Context(), r.PathValue("id")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) moveAreaUp(w http.ResponseWriter, r *http.Request) {
	h.writeMove(w, r, h.store.MoveActivityAreaUp)
}

func (h *handler) moveAreaDown(w http.ResponseWriter, r *http.Request) {
	h.writeMove(w, r, h.store.MoveActivityAreaDown)
}
