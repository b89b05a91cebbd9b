package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/notavel/gofiber-notes-api/application/serviceimpl"
	"github.com/notavel/gofiber-notes-api/infrastructure/persistence/memory"
	"github.com/notavel/gofiber-notes-api/interfaces/api/handler"
	"github.com/notavel/gofiber-notes-api/interfaces/api/routes"
)

func newTestApp() *fiber.App {
	store := memory.NewEmptyStore()
	noteRepo := memory.NewNoteRepository(store)
	categoryRepo := memory.NewCategoryRepository(store)
	tagRepo := memory.NewTagRepository(store)

	noteHandler := handler.NewNoteHandler(serviceimpl.NewNoteService(noteRepo), nil)
	categoryHandler := handler.NewCategoryHandler(serviceimpl.NewCategoryService(categoryRepo, noteRepo), nil)
	tagHandler := handler.NewTagHandler(serviceimpl.NewTagService(tagRepo), nil)

	app := fiber.New()
	routes.SetupRoutes(app, noteHandler, categoryHandler, tagHandler)
	return app
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, *envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, &env
}

func TestCreateAndGetNote(t *testing.T) {
	app := newTestApp()

	resp, env := doRequest(t, app, "POST", "/api/v1/notes/", map[string]interface{}{
		"title":   "Meeting notes",
		"content": "discuss roadmap",
		"tags":    []string{"work"},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", resp.StatusCode, env.Message)
	}
	if !env.Success {
		t.Fatalf("expected success envelope: %s", env.Message)
	}

	var created struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id in response")
	}

	resp, env = doRequest(t, app, "GET", "/api/v1/notes/"+created.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var got struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if got.Title != "Meeting notes" || got.Content != "discuss roadmap" {
		t.Errorf("roundtrip mismatch: %+v", got)
	}
}

func TestCreateNoteValidationStatus(t *testing.T) {
	app := newTestApp()

	resp, env := doRequest(t, app, "POST", "/api/v1/notes/", map[string]interface{}{
		"content": "missing title",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
	if env.Success {
		t.Error("expected success=false")
	}
	if env.Message != "title is required" {
		t.Errorf("unexpected message: %q", env.Message)
	}
}

func TestGetNoteNotFound(t *testing.T) {
	app := newTestApp()

	resp, _ := doRequest(t, app, "GET", "/api/v1/notes/6ba7b810-9dad-11d1-80b4-00c04fd430c8", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for unknown note, got %d", resp.StatusCode)
	}

	resp, _ = doRequest(t, app, "GET", "/api/v1/notes/not-a-uuid", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed id, got %d", resp.StatusCode)
	}
}

func TestPatchNote(t *testing.T) {
	app := newTestApp()

	_, env := doRequest(t, app, "POST", "/api/v1/notes/", map[string]interface{}{
		"title":   "original",
		"content": "body",
	})
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatal(err)
	}

	resp, env := doRequest(t, app, "PATCH", "/api/v1/notes/"+created.ID, map[string]interface{}{
		"title": "patched",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", resp.StatusCode, env.Message)
	}

	var updated struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := json.Unmarshal(env.Data, &updated); err != nil {
		t.Fatal(err)
	}
	if updated.Title != "patched" || updated.Content != "body" {
		t.Errorf("partial update mismatch: %+v", updated)
	}
}

func TestDeleteNoteStatus(t *testing.T) {
	app := newTestApp()

	_, env := doRequest(t, app, "POST", "/api/v1/notes/", map[string]interface{}{"title": "temp"})
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatal(err)
	}

	resp, _ := doRequest(t, app, "DELETE", "/api/v1/notes/"+created.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	resp, _ = doRequest(t, app, "DELETE", "/api/v1/notes/"+created.ID, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", resp.StatusCode)
	}
}

func TestNoteFilterQueries(t *testing.T) {
	app := newTestApp()

	for _, body := range []map[string]interface{}{
		{"title": "work note", "tags": []string{"work"}, "is_favorite": true},
		{"title": "play note", "tags": []string{"play"}},
		{"title": "old note", "is_archived": true},
	} {
		if resp, env := doRequest(t, app, "POST", "/api/v1/notes/", body); resp.StatusCode != http.StatusCreated {
			t.Fatalf("seed failed: %d (%s)", resp.StatusCode, env.Message)
		}
	}

	var list struct {
		Notes []struct {
			Title string `json:"title"`
		} `json:"notes"`
		Total int `json:"total"`
	}

	// default view ซ่อน archived
	_, env := doRequest(t, app, "GET", "/api/v1/notes/", nil)
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatal(err)
	}
	if list.Total != 2 {
		t.Errorf("default list must hide archived, got %d", list.Total)
	}

	_, env = doRequest(t, app, "GET", "/api/v1/notes/?favorite=true", nil)
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatal(err)
	}
	if list.Total != 1 || list.Notes[0].Title != "work note" {
		t.Errorf("favorite filter mismatch: %+v", list)
	}

	_, env = doRequest(t, app, "GET", "/api/v1/notes/?tag=play", nil)
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatal(err)
	}
	if list.Total != 1 || list.Notes[0].Title != "play note" {
		t.Errorf("tag filter mismatch: %+v", list)
	}

	_, env = doRequest(t, app, "GET", "/api/v1/notes/archived", nil)
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatal(err)
	}
	if list.Total != 1 || list.Notes[0].Title != "old note" {
		t.Errorf("archived route mismatch: %+v", list)
	}

	_, env = doRequest(t, app, "GET", "/api/v1/notes/search?q=work", nil)
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatal(err)
	}
	if list.Total != 1 || list.Notes[0].Title != "work note" {
		t.Errorf("search route mismatch: %+v", list)
	}
}

func TestFavoriteRoutes(t *testing.T) {
	app := newTestApp()

	_, env := doRequest(t, app, "POST", "/api/v1/notes/", map[string]interface{}{"title": "starred"})
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatal(err)
	}

	resp, env := doRequest(t, app, "PUT", "/api/v1/notes/"+created.ID+"/favorite", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("favorite failed: %d (%s)", resp.StatusCode, env.Message)
	}

	var list struct {
		Total int `json:"total"`
	}
	_, env = doRequest(t, app, "GET", "/api/v1/notes/favorites", nil)
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatal(err)
	}
	if list.Total != 1 {
		t.Fatalf("expected 1 favorite, got %d", list.Total)
	}

	if resp, _ := doRequest(t, app, "DELETE", "/api/v1/notes/"+created.ID+"/favorite", nil); resp.StatusCode != http.StatusOK {
		t.Fatalf("unfavorite failed: %d", resp.StatusCode)
	}
	_, env = doRequest(t, app, "GET", "/api/v1/notes/favorites", nil)
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatal(err)
	}
	if list.Total != 0 {
		t.Errorf("expected 0 favorites after removal, got %d", list.Total)
	}
}

func TestTagConflictStatus(t *testing.T) {
	app := newTestApp()

	if resp, env := doRequest(t, app, "POST", "/api/v1/tags/", map[string]interface{}{"name": "work"}); resp.StatusCode != http.StatusCreated {
		t.Fatalf("create tag failed: %d (%s)", resp.StatusCode, env.Message)
	}

	resp, env := doRequest(t, app, "POST", "/api/v1/tags/", map[string]interface{}{"name": "work"})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("expected 409 for duplicate tag, got %d", resp.StatusCode)
	}
	if env.Message != "tag already exists" {
		t.Errorf("unexpected message: %q", env.Message)
	}
}

func TestCategoryDeleteClearsNotes(t *testing.T) {
	app := newTestApp()

	_, env := doRequest(t, app, "POST", "/api/v1/categories/", map[string]interface{}{
		"name":  "Projects",
		"color": "#3b82f6",
	})
	var category struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &category); err != nil {
		t.Fatal(err)
	}

	_, env = doRequest(t, app, "POST", "/api/v1/notes/", map[string]interface{}{
		"title":       "kickoff",
		"category_id": category.ID,
	})
	var note struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &note); err != nil {
		t.Fatal(err)
	}

	if resp, _ := doRequest(t, app, "DELETE", "/api/v1/categories/"+category.ID, nil); resp.StatusCode != http.StatusOK {
		t.Fatalf("delete category failed: %d", resp.StatusCode)
	}

	resp, env := doRequest(t, app, "GET", "/api/v1/notes/"+note.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("note must survive category deletion: %d", resp.StatusCode)
	}
	var got struct {
		CategoryID *string `json:"category_id"`
	}
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatal(err)
	}
	if got.CategoryID != nil {
		t.Errorf("category_id must be null after category deletion, got %v", *got.CategoryID)
	}
}
