package api

import (
	"context"
	"net/http"

	"github.com/hauswerk/dokuhilfe/internal/storage"
)

type handler struct {
	store storage.Store
}

// writeMove runs one move operation and reports whether anything changed.
func (h *handler) writeMove(w http.ResponseWriter, r *http.Request, move func(context.Context, string) (bool, error)) {
	moved, err := move(r.Context(), r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"moved": moved})
}

func (h *handler) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc(http.MethodGet+" /api/persons", h.listPersons)
	mux.HandleFunc(http.MethodPost+" /api/persons", h.createPerson)
	mux.HandleFunc(http.MethodPatch+" /api/persons/{id}", h.renamePerson)
	mux.HandleFunc(http.MethodDelete+" /api/persons/{id}", h.deletePerson)
	mux.HandleFunc(http.MethodPost+" /api/persons/{id}/move-up", h.movePersonUp)
	mux.HandleFunc(http.MethodPost+" /api/persons/{id}/move-down", h.movePersonDown)

	mux.HandleFunc(http.MethodGet+" /api/activity-areas", h.listAreas)
	mux.HandleFunc(http.MethodPost+" /api/activity-areas", h.createArea)
	mux.HandleFunc(http.MethodPatch+" /api/activity-areas/{id}", h.renameArea)
	mux.HandleFunc(http.MethodDelete+" /api/activity-areas/{id}", h.deleteArea)
	mux.HandleFunc(http.MethodPost+" /api/activity-areas/{id}/move-up", h.moveAreaUp)
	mux.HandleFunc(http.MethodPost+" /api/activity-areas/{id}/move-down", h.moveAreaDown)

	mux.HandleFunc(http.MethodGet+" /api/activities", h.listActivities)
	mux.HandleFunc(http.MethodGet+" /api/activities/area/{areaId}", h.listActivitiesByArea)
	mux.HandleFunc(http.MethodPost+" /api/activities", h.createActivity)
	mux.HandleFunc(http.MethodPatch+" /api/activities/{id}", h.updateActivity)
	mux.HandleFunc(http.MethodDelete+" /api/activities/{id}", h.deleteActivity)
	mux.HandleFunc(http.MethodPost+" /api/activities/{id}/move-up", h.moveActivityUp)
	mux.HandleFunc(http.MethodPost+" /api/activities/{id}/move-down", h.moveActivityDown)

	mux.HandleFunc(http.MethodGet+" /api/work-behavior-categories", h.listCategories)
	mux.HandleFunc(http.MethodPost+" /api/work-behavior-categories", h.createCategory)
	mux.HandleFunc(http.MethodPatch+" /api/work-behavior-categories/{id}", h.updateCategory)
	mux.HandleFunc(http.MethodDelete+" /api/work-behavior-categories/{id}", h.deleteCategory)
	mux.HandleFunc(http.MethodPost+" /api/work-behavior-categories/{id}/move-up", h.moveCategoryUp)
	mux.HandleFunc(http.MethodPost+" /api/work-behavior-categories/{id}/move-down", h.moveCategoryDown)

	mux.HandleFunc(http.MethodGet+" /api/goals", h.listGoals)
	mux.HandleFunc(http.MethodGet+" /api/goals/person/{personId}", h.listGoalsByPerson)
	mux.HandleFunc(http.MethodPost+" /api/goals", h.createGoal)
	mux.HandleFunc(http.MethodPatch+" /api/goals/{id}", h.updateGoal)
	mux.HandleFunc(http.MethodDelete+" /api/goals/{id}", h.deleteGoal)

	mux.HandleFunc(http.MethodGet+" /api/documenting-person", h.getDocumentingPerson)
	mux.HandleFunc(http.MethodPut+" /api/documenting-person", h.setDocumentingPerson)

	mux.HandleFunc(http.MethodGet+" /api/export", h.exportData)
	mux.HandleFunc(http.MethodPost+" /api/import", h.importData)

	mux.HandleFunc(http.MethodPost+" /api/compose/behavior", h.composeBehavior)
	mux.HandleFunc(http.MethodPost+" /api/compose/activity", h.composeActivity)

	return mux
}
