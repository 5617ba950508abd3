package api

import (
	"net/http"

	"github.com/hauswerk/dokuhilfe/internal/storage"
)

type activityPayload struct {
	ID          string `json:"id"`
	AreaID      string `json:"areaId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Measure     string `json:"measure"`
	Order       int    `json:"order"`
}

func activityToPayload(activity storage.Activity) activityPayload {
	return activityPayload{
		ID:          activity.ID,
		AreaID:      activity.AreaID,
		Title:       activity.Title,
		Description: activity.Description,
		Measure:     activity.Measure,
		Order:       activity.Order,
	}
}

func activitiesToPayload(activities []storage.Activity) []activityPayload {
	payload := make([]activityPayload, 0, len(activities))
	for _, activity := range activities {
		payload = append(payload, activityToPayload(activity))
	}
	return payload
}

func (h *handler) listActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.store.ListActivities(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activitiesToPayload(activities))
}

func (h *handler) listActivitiesByArea(w http.ResponseWriter, r *http.Request) {
	activities, err := h.store.ListActivitiesByArea(r.Context(), r.PathValue("areaId"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activitiesToPayload(activities))
}

func (h *handler) createActivity(w http.ResponseWriter, r *http.Request) {
	var body struct {
		AreaID      string `json:"areaId"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Measure     string `json:"measure"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Title == "" || body.AreaID == "" {
		writeJSONError(w, http.StatusBadRequest, "areaId and title are required")
		return
	}
	activity, err := h.store.CreateActivity(r.Context(), storage.Activity{
		AreaID:      body.AreaID,
		Title:       body.Title,
		Description: body.Description,
		Measure:     body.Measure,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, activityToPayload(activity))
}

func (h *handler) updateActivity(w http.ResponseWriter, r *http.Request) {
	var body struct {
		AreaID      *string `json:"areaId"`
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Measure     *string `json:"measure"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	activity, err := h.store.UpdateActivity(r.Context(), r.PathValue("id"), storage.ActivityUpdate{
		AreaID:      body.AreaID,
		Title:       body.Title,
		Description: body.Description,
		Measure:     body.Measure,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activityToPayload(activity))
}

func (h *handler) deleteActivity(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteActivity(r.Context(), r.PathValue("id")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) moveActivityUp(w http.ResponseWriter, r *http.Request) {
	h.writeMove(w, r, h.store.MoveActivityUp)
}

func (h *handler) moveActivityDown(w http.ResponseWriter, r *http.Request) {
	h.writeMove(w, r, h.store.MoveActivityDown)
}
