package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vrshow/testhelpers"
)

func TestHandleProjectList_Empty(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleProjectList(app)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Projects []map[string]any `json:"projects"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Projects == nil {
		t.Error("projects should be an empty array, not null")
	}
	if len(resp.Projects) != 0 {
		t.Errorf("expected no projects, got %d", len(resp.Projects))
	}
}

func TestHandleProjectList_ReturnsProjects(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestProject(t, app, "Projet A")
	testhelpers.CreateTestProject(t, app, "Projet B")
	handler := HandleProjectList(app)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Projects []map[string]any `json:"projects"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(resp.Projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(resp.Projects))
	}

	// Invitation codes must never leak through the list payload
	for _, p := range resp.Projects {
		if _, ok := p["invited_team"]; ok {
			t.Error("project payload should not expose invited_team")
		}
	}
}
