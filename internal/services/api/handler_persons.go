package api

import (
	"net/http"

	"github.com/hauswerk/dokuhilfe/internal/storage"
)

type personPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

func personToPayload(person storage.Person) personPayload {
	return personPayload{ID: person.ID, Name: person.Name, Order: person.Order}
}

func (h *handler) listPersons(w http.ResponseWriter, r *http.Request) {
	persons, err := h.store.ListPersons(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	payload := make([]personPayload, 0, len(persons))
	for _, person := range persons {
		payload = append(payload, personToPayload(person))
	}
	writeJSON(w, http.StatusOK, payload)
}

func (h *handler) createPerson(w http.ResponseWriter, r *http.Request) {
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
	person, err := h.store.CreatePerson(r.Context(), body.Name)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, personToPayload(person))
}

func (h *handler) renamePerson(w http.ResponseWriter, r *http.Request) {
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
	person, err := h.store.RenamePerson(r.Context(), r.PathValue("id"), body.Name)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, personToPayload(person))
}

func (h *handler) deletePerson(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeletePerson(r.Context(), r.PathValue("id")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) movePersonUp(w http.ResponseWriter, r *http.Request) {
	h.writeMove(w, r, h.store.MovePersonUp)
}

func (h *handler) movePersonDown(w http.ResponseWriter, r *http.Request) {
	h.writeMove(w, r, h.store.MovePersonDown)
}
