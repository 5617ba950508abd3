package api

import (
	"io"
	"net/http"

	"github.com/hauswerk/dokuhilfe/internal/transfer"
)

// maxImportBytes caps import payloads; the datasets are small in practice.
const maxImportBytes = 10 << 20

func (h *handler) exportData(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.store.ExportSnapshot(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, transfer.FromSnapshot(snapshot))
}

func (h *handler) importData(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "read request body")
		return
	}
	snapshot, legacy, err := transfer.Decode(data)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid import document")
		return
	}
	if legacy {
		// Legacy documents carry no categories; keep the current ones.
		categories, err := h.store.ListWorkBehaviorCategories(r.Context())
		if err != nil {
			writeStoreError(w, err)
			return
		}
		snapshot.Categories = categories
	}
	if err := h.store.ImportSnapshot(r.Context(), snapshot); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) getDocumentingPerson(w http.ResponseWriter, r *http.Request) {
	name, err := h.store.DocumentingPerson(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"name": name})
}

func (h *handler) setDocumentingPerson(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if err := h.store.SetDocumentingPerson(r.Context(), body.Name); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"name": body.Name})
}
