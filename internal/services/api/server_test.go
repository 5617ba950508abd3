package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hauswerk/dokuhilfe/internal/storage"
	"github.com/hauswerk/dokuhilfe/internal/storage/sqlite"
)

func newTestServer(t *testing.T) (*Server, *sqlite.Store) {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "doku.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewServer(Config{}, store), store
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	request := httptest.NewRequest(method, path, reader)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func decodeResponse(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), target); err != nil {
		t.Fatalf("decode response %q: %v", recorder.Body.String(), err)
	}
}

func TestPersonEndpoints(t *testing.T) {
	server, _ := newTestServer(t)
	handler := server.Handler()

	created := doJSON(t, handler, http.MethodPost, "/api/persons", map[string]string{"name": "Anna Schmidt"})
	if created.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", created.Code, created.Body)
	}
	var person personPayload
	decodeResponse(t, created, &person)
	if person.ID == "" || person.Name != "Anna Schmidt" || person.Order != 0 {
		t.Fatalf("created person = %+v", person)
	}

	doJSON(t, handler, http.MethodPost, "/api/persons", map[string]string{"name": "Bernd Maier"})

	listed := doJSON(t, handler, http.MethodGet, "/api/persons", nil)
	var persons []personPayload
	decodeResponse(t, listed, &persons)
	if len(persons) != 2 {
		t.Fatalf("len(persons) = %d, want 2", len(persons))
	}

	renamed := doJSON(t, handler, http.MethodPatch, "/api/persons/"+person.ID, map[string]string{"name": "Anna Vogel"})
	if renamed.Code != http.StatusOK {
		t.Fatalf("rename status = %d", renamed.Code)
	}

	moved := doJSON(t, handler, http.MethodPost, "/api/persons/"+person.ID+"/move-down", nil)
	var moveResult struct {
		Moved bool `json:"moved"`
	}
	decodeResponse(t, moved, &moveResult)
	if !moveResult.Moved {
		t.Fatal("move-down reported moved = false")
	}
	// Now at the bottom.
	moved = doJSON(t, handler, http.MethodPost, "/api/persons/"+person.ID+"/move-down", nil)
	decodeResponse(t, moved, &moveResult)
	if moveResult.Moved {
		t.Fatal("move-down at boundary reported moved = true")
	}

	deleted := doJSON(t, handler, http.MethodDelete, "/api/persons/"+person.ID, nil)
	if deleted.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", deleted.Code)
	}
	missing := doJSON(t, handler, http.MethodDelete, "/api/persons/"+person.ID, nil)
	if missing.Code != http.StatusNotFound {
		t.Fatalf("delete missing status = %d, want 404", missing.Code)
	}
}

func TestCreatePersonValidation(t *testing.T) {
	server, _ := newTestServer(t)
	handler := server.Handler()

	response := doJSON(t, handler, http.MethodPost, "/api/persons", map[string]string{})
	if response.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", response.Code)
	}
	var body map[string]string
	decodeResponse(t, response, &body)
	if body["error"] == "" {
		t.Fatalf("error body = %v, want error message", body)
	}

	request := httptest.NewRequest(http.MethodPost, "/api/persons", strings.NewReader("{nope"))
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("invalid JSON status = %d, want 400", recorder.Code)
	}
}

func TestActivityEndpoints(t *testing.T) {
	server, store := newTestServer(t)
	handler := server.Handler()
	ctx := context.Background()

	area, err := store.CreateActivityArea(ctx, "Montage")
	if err != nil {
		t.Fatalf("CreateActivityArea() error = %v", err)
	}
	other, _ := store.CreateActivityArea(ctx, "Verpackung")

	created := doJSON(t, handler, http.MethodPost, "/api/activities", map[string]string{
		"areaId":      area.ID,
		"title":       "Teile sortieren",
		"description": "Kleinteile nach Größe sortieren",
	})
	if created.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", created.Code, created.Body)
	}
	var activity activityPayload
	decodeResponse(t, created, &activity)

	doJSON(t, handler, http.MethodPost, "/api/activities", map[string]string{
		"areaId": other.ID,
		"title":  "Kartons falten",
	})

	byArea := doJSON(t, handler, http.MethodGet, "/api/activities/area/"+area.ID, nil)
	var activities []activityPayload
	decodeResponse(t, byArea, &activities)
	if len(activities) != 1 || activities[0].ID != activity.ID {
		t.Fatalf("area activities = %v", activities)
	}

	patched := doJSON(t, handler, http.MethodPatch, "/api/activities/"+activity.ID, map[string]string{
		"measure": "Anleitung bereitstellen",
	})
	var updated activityPayload
	decodeResponse(t, patched, &updated)
	if updated.Measure != "Anleitung bereitstellen" {
		t.Fatalf("updated.Measure = %q", updated.Measure)
	}
	if updated.Title != "Teile sortieren" {
		t.Fatalf("partial update changed Title to %q", updated.Title)
	}

	missingArea := doJSON(t, handler, http.MethodPost, "/api/activities", map[string]string{"title": "Ohne Bereich"})
	if missingArea.Code != http.StatusBadRequest {
		t.Fatalf("create without area status = %d, want 400", missingArea.Code)
	}
}

func TestCategoryEndpointsValidateChoicePair(t *testing.T) {
	server, _ := newTestServer(t)
	handler := server.Handler()

	response := doJSON(t, handler, http.MethodPost, "/api/work-behavior-categories", map[string]any{
		"category": "💪 1. Motivation",
		"choices":  []string{"nur eine"},
	})
	if response.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", response.Code)
	}

	response = doJSON(t, handler, http.MethodPost, "/api/work-behavior-categories", map[string]any{
		"category": "💪 1. Motivation",
		"choices":  []string{"ist motiviert", "ist unmotiviert"},
	})
	if response.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", response.Code, response.Body)
	}
	var category categoryPayload
	decodeResponse(t, response, &category)
	if category.Category != "💪 1. Motivation" || len(category.Choices) != 2 {
		t.Fatalf("category = %+v", category)
	}
}

func TestGoalEndpoints(t *testing.T) {
	server, store := newTestServer(t)
	handler := server.Handler()

	person, _ := store.CreatePerson(context.Background(), "Clara Weber")

	created := doJSON(t, handler, http.MethodPost, "/api/goals", map[string]string{
		"personId": person.ID,
		"title":    "Selbstständig arbeiten",
		"dueDate":  "2026-12-31",
	})
	if created.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", created.Code, created.Body)
	}
	var goal goalPayload
	decodeResponse(t, created, &goal)
	if goal.Status != "open" || goal.CompletedAt != nil {
		t.Fatalf("new goal = %+v", goal)
	}

	completed := doJSON(t, handler, http.MethodPatch, "/api/goals/"+goal.ID, map[string]string{"status": "completed"})
	var done goalPayload
	decodeResponse(t, completed, &done)
	if done.Status != "completed" || done.CompletedAt == nil {
		t.Fatalf("completed goal = %+v", done)
	}

	invalid := doJSON(t, handler, http.MethodPatch, "/api/goals/"+goal.ID, map[string]string{"status": "erledigt"})
	if invalid.Code != http.StatusBadRequest {
		t.Fatalf("invalid status code = %d, want 400", invalid.Code)
	}

	byPerson := doJSON(t, handler, http.MethodGet, "/api/goals/person/"+person.ID, nil)
	var goals []goalPayload
	decodeResponse(t, byPerson, &goals)
	if len(goals) != 1 {
		t.Fatalf("len(goals) = %d, want 1", len(goals))
	}
}

func TestDocumentingPersonEndpoints(t *testing.T) {
	server, _ := newTestServer(t)
	handler := server.Handler()

	response := doJSON(t, handler, http.MethodGet, "/api/documenting-person", nil)
	var body map[string]string
	decodeResponse(t, response, &body)
	if body["name"] != "" {
		t.Fatalf("unset name = %q, want empty", body["name"])
	}

	doJSON(t, handler, http.MethodPut, "/api/documenting-person", map[string]string{"name": "Eva Klein"})
	response = doJSON(t, handler, http.MethodGet, "/api/documenting-person", nil)
	decodeResponse(t, response, &body)
	if body["name"] != "Eva Klein" {
		t.Fatalf("name = %q, want Eva Klein", body["name"])
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	server, store := newTestServer(t)
	handler := server.Handler()
	ctx := context.Background()

	person, _ := store.CreatePerson(ctx, "Anna Schmidt")
	store.CreateWorkBehaviorCategory(ctx, "💪 1. Motivation", "ist motiviert", "ist unmotiviert")

	exported := doJSON(t, handler, http.MethodGet, "/api/export", nil)
	if exported.Code != http.StatusOK {
		t.Fatalf("export status = %d", exported.Code)
	}

	// Import the export into a second server.
	otherStore, err := sqlite.Open(filepath.Join(t.TempDir(), "doku.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer otherStore.Close()
	otherHandler := NewServer(Config{}, otherStore).Handler()

	request := httptest.NewRequest(http.MethodPost, "/api/import", bytes.NewReader(exported.Body.Bytes()))
	recorder := httptest.NewRecorder()
	otherHandler.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusNoContent {
		t.Fatalf("import status = %d, body %s", recorder.Code, recorder.Body)
	}

	persons, err := otherStore.ListPersons(ctx)
	if err != nil {
		t.Fatalf("ListPersons() error = %v", err)
	}
	if len(persons) != 1 || persons[0].ID != person.ID {
		t.Fatalf("imported persons = %v", persons)
	}
}

func TestImportLegacyKeepsCategories(t *testing.T) {
	server, store := newTestServer(t)
	handler := server.Handler()
	ctx := context.Background()

	kept, err := store.CreateWorkBehaviorCategory(ctx, "💪 1. Motivation", "ist motiviert", "ist unmotiviert")
	if err != nil {
		t.Fatalf("CreateWorkBehaviorCategory() error = %v", err)
	}

	legacy := `{"nameList": ["Anna Müller"], "taetigkeiten": {"Montage": ["Teile sortieren"]}, "ziele": []}`
	request := httptest.NewRequest(http.MethodPost, "/api/import", strings.NewReader(legacy))
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusNoContent {
		t.Fatalf("import status = %d, body %s", recorder.Code, recorder.Body)
	}

	categories, err := store.ListWorkBehaviorCategories(ctx)
	if err != nil {
		t.Fatalf("ListWorkBehaviorCategories() error = %v", err)
	}
	if len(categories) != 1 || categories[0].ID != kept.ID {
		t.Fatalf("categories after legacy import = %v", categories)
	}
	persons, _ := store.ListPersons(ctx)
	if len(persons) != 1 || persons[0].ID != "legacy-0-anna-muller" {
		t.Fatalf("persons after legacy import = %v", persons)
	}
}

func TestComposeBehaviorEndpoint(t *testing.T) {
	server, store := newTestServer(t)
	handler := server.Handler()
	ctx := context.Background()

	konzentration, _ := store.CreateWorkBehaviorCategory(ctx,
		"🧠 1. Konzentration", "zeigt gute Konzentration.", "zeigt schwache Konzentration.")
	motivation, _ := store.CreateWorkBehaviorCategory(ctx,
		"🔥 2. Motivation", "ist motiviert.", "ist unmotiviert.")

	response := doJSON(t, handler, http.MethodPost, "/api/compose/behavior", map[string]any{
		"selections": []map[string]string{
			{"categoryId": konzentration.ID, "choice": "zeigt gute Konzentration."},
			{"categoryId": motivation.ID, "choice": "ist unmotiviert."},
		},
		"personName":        "Tom Berg",
		"documentingPerson": "Eva Klein",
	})
	if response.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", response.Code, response.Body)
	}
	var body map[string]string
	decodeResponse(t, response, &body)
	if body["header"] != "Konzentration +" {
		t.Fatalf("header = %q, want %q", body["header"], "Konzentration +")
	}
	want := "Eva Klein (GL): Tom Berg (BE) zeigt gute Konzentration und ist unmotiviert."
	if body["text"] != want {
		t.Fatalf("text = %q, want %q", body["text"], want)
	}

	// Toggling the same choice twice removes it again.
	response = doJSON(t, handler, http.MethodPost, "/api/compose/behavior", map[string]any{
		"selections": []map[string]string{
			{"categoryId": konzentration.ID, "choice": "zeigt gute Konzentration."},
			{"categoryId": konzentration.ID, "choice": "zeigt gute Konzentration."},
		},
		"personName": "Tom Berg",
	})
	decodeResponse(t, response, &body)
	if body["header"] != "" || body["text"] != "" {
		t.Fatalf("empty ledger output = %v, want empty strings", body)
	}
}

func TestComposeActivityEndpoint(t *testing.T) {
	server, store := newTestServer(t)
	handler := server.Handler()
	ctx := context.Background()

	area, _ := store.CreateActivityArea(ctx, "Montage")
	activity, _ := store.CreateActivity(ctx, storage.Activity{
		AreaID:      area.ID,
		Title:       "Materialvorbereitung",
		Description: "Vorbereitung der Materialien",
		Measure:     "Material bereitstellen",
	})

	response := doJSON(t, handler, http.MethodPost, "/api/compose/activity", map[string]string{
		"activityId":        activity.ID,
		"personName":        "Tom Berg",
		"documentingPerson": "Eva Klein",
	})
	if response.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", response.Code, response.Body)
	}
	var body map[string]string
	decodeResponse(t, response, &body)
	if body["title"] != "Materialvorbereitung" {
		t.Fatalf("title = %q", body["title"])
	}
	if body["documentedBy"] != "Klein, Eva" {
		t.Fatalf("documentedBy = %q, want %q", body["documentedBy"], "Klein, Eva")
	}

	missing := doJSON(t, handler, http.MethodPost, "/api/compose/activity", map[string]string{
		"activityId": "missing",
	})
	if missing.Code != http.StatusNotFound {
		t.Fatalf("missing activity status = %d, want 404", missing.Code)
	}
}
