package api

import (
	"net/http"
	"time"

	"github.com/hauswerk/dokuhilfe/internal/storage"
)

type goalPayload struct {
	ID          string     `json:"id"`
	PersonID    string     `json:"personId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Measure     string     `json:"measure"`
	DueDate     string     `json:"dueDate"`
	Status      string     `json:"status"`
	Order       int        `json:"order"`
	CompletedAt *time.Time `json:"completedAt"`
}

func goalToPayload(goal storage.Goal) goalPayload {
	return goalPayload{
		ID:          goal.ID,
		PersonID:    goal.PersonID,
		Title:       goal.Title,
		Description: goal.Description,
		Measure:     goal.Measure,
		DueDate:     goal.DueDate,
		Status:      string(goal.Status),
		Order:       goal.Order,
		CompletedAt: goal.CompletedAt,
	}
}

func goalsToPayload(goals []storage.Goal) []goalPayload {
	payload := make([]goalPayload, 0, len(goals))
	for _, goal := range goals {
		payload = append(payload, goalToPayload(goal))
	}
	return payload
}

func (h *handler) listGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.store.ListGoals(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, goalsToPayload(goals))
}

func (h *handler) listGoalsByPerson(w http.ResponseWriter, r *http.Request) {
	goals, err := h.store.ListGoalsByPerson(r.Context(), r.PathValue("personId"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, goalsToPayload(goals))
}

func (h *handler) createGoal(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PersonID    string `json:"personId"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Measure     string `json:"measure"`
		DueDate     string `json:"dueDate"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Title == "" {
		writeJSONError(w, http.StatusBadRequest, "title is required")
		return
	}
	goal, err := h.store.CreateGoal(r.Context(), storage.Goal{
		PersonID:    body.PersonID,
		Title:       body.Title,
		Description: body.Description,
		Measure:     body.Measure,
		DueDate:     body.DueDate,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, goalToPayload(goal))
}

func (h *handler) updateGoal(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PersonID    *string `json:"personId"`
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Measure     *string `json:"measure"`
		DueDate     *string `json:"dueDate"`
		Status      *string `json:"status"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	update := storage.GoalUpdate{
		PersonID:    body.PersonID,
		Title:       body.Title,
		Description: body.Description,
		Measure:     body.Measure,
		DueDate:     body.DueDate,
	}
	if body.Status != nil {
		status := storage.GoalStatus(*body.Status)
		if status != storage.GoalStatusOpen && status != storage.GoalStatusCompleted {
			writeJSONError(w, http.StatusBadRequest, "status must be open or completed")
			return
		}
		update.Status = &status
	}
	goal, err := h.store.UpdateGoal(r.Context(), r.PathValue("id"), update)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, goalToPayload(goal))
}

func (h *handler) deleteGoal(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteGoal(r.Context(), r.PathValue("id")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
