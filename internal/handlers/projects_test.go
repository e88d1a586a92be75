package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestProjectSaveAndLoad(t *testing.T) {
	setupHandlers(t)

	payload := []byte(`{"material":"AISI 1018 Steel","volume":1000,"notes":"bracket rev B"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ProjectResource(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var created map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	id := created["project_id"]
	if id == "" {
		t.Fatal("expected a generated project id")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/projects/"+id, nil)
	w = httptest.NewRecorder()
	ProjectResource(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !bytes.Equal(bytes.TrimSpace(w.Body.Bytes()), payload) {
		t.Fatalf("expected stored payload round trip, got %s", w.Body.String())
	}
}

func TestProjectSaveRejectsInvalidJSON(t *testing.T) {
	setupHandlers(t)

	req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewReader([]byte(`{"broken`)))
	w := httptest.NewRecorder()
	ProjectResource(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for invalid JSON, got %d", w.Code)
	}
}

func TestProjectLoadMissing(t *testing.T) {
	setupHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/api/projects/0e8dd9a1-54d4-4b1f-8f1c-5a4f9a9d2a31", nil)
	w := httptest.NewRecorder()
	ProjectResource(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for unknown project, got %d", w.Code)
	}

	// Non-UUID identifiers behave the same as missing projects.
	req = httptest.NewRequest(http.MethodGet, "/api/projects/..%2F..%2Fetc", nil)
	w = httptest.NewRecorder()
	ProjectResource(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for malformed id, got %d", w.Code)
	}
}

func TestProjectMethodNotAllowed(t *testing.T) {
	setupHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	w := httptest.NewRecorder()
	ProjectResource(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405 for GET on collection, got %d", w.Code)
	}
}
