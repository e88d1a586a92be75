package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRecordRecentAnalysesCapsHistory(t *testing.T) {
	sm := withTestSessionManager(t)

	req := httptest.NewRequest(http.MethodGet, "/api/session/recent", nil)
	req = sessionRequest(t, sm, req)

	for i := 0; i < maxRecentAnalyses+2; i++ {
		recordRecentAnalysis(req, recentAnalysis{
			File:     fmt.Sprintf("part-%d.dxf", i),
			Material: "steel",
			WeightKg: float64(i),
			Cost:     float64(i) * 2,
		})
	}

	history := loadRecentAnalyses(req)
	if len(history) != maxRecentAnalyses {
		t.Fatalf("expected history capped at %d, got %d", maxRecentAnalyses, len(history))
	}
	if history[0].File != fmt.Sprintf("part-%d.dxf", maxRecentAnalyses+1) {
		t.Fatalf("expected newest entry first, got %q", history[0].File)
	}
}

func TestRecentAnalysesHandler(t *testing.T) {
	sm := withTestSessionManager(t)

	req := httptest.NewRequest(http.MethodGet, "/api/session/recent", nil)
	req = sessionRequest(t, sm, req)
	recordRecentAnalysis(req, recentAnalysis{File: "bracket.pdf", Material: "aluminum", WeightKg: 1.2, Cost: 4.5})

	w := httptest.NewRecorder()
	RecentAnalyses(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var history []recentAnalysis
	if err := json.Unmarshal(w.Body.Bytes(), &history); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(history) != 1 || history[0].File != "bracket.pdf" {
		t.Fatalf("unexpected history %+v", history)
	}
}

func TestRecentAnalysesEmptySession(t *testing.T) {
	sm := withTestSessionManager(t)

	req := httptest.NewRequest(http.MethodGet, "/api/session/recent", nil)
	req = sessionRequest(t, sm, req)

	w := httptest.NewRecorder()
	RecentAnalyses(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if body := w.Body.String(); body != "[]\n" {
		t.Fatalf("expected an empty JSON array, got %q", body)
	}
}
