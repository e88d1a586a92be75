package handlers

import (
	"encoding/json"
	"net/http"

	applog "materio/internal/log"
)

const sessionRecentKey = "recent_analyses"

// maxRecentAnalyses bounds the per-session history.
const maxRecentAnalyses = 5

type recentAnalysis struct {
	File     string  `json:"file"`
	Material string  `json:"material"`
	WeightKg float64 `json:"weight_kg"`
	Cost     float64 `json:"cost"`
}

// recordRecentAnalysis prepends an analysis summary to the browser session's
// history. Session values are stored as a JSON string so scs needs no gob
// registration.
func recordRecentAnalysis(r *http.Request, entry recentAnalysis) {
	if sessionManager == nil {
		return
	}

	history := loadRecentAnalyses(r)
	history = append([]recentAnalysis{entry}, history...)
	if len(history) > maxRecentAnalyses {
		history = history[:maxRecentAnalyses]
	}

	encoded, err := json.Marshal(history)
	if err != nil {
		applog.Error(r.Context(), "failed to encode session history", "error", err)
		return
	}
	sessionManager.Put(r.Context(), sessionRecentKey, string(encoded))
}

func loadRecentAnalyses(r *http.Request) []recentAnalysis {
	if sessionManager == nil {
		return nil
	}
	raw := sessionManager.GetString(r.Context(), sessionRecentKey)
	if raw == "" {
		return nil
	}
	var history []recentAnalysis
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		applog.Debug(r.Context(), "discarding malformed session history", "error", err)
		return nil
	}
	return history
}

// RecentAnalyses returns the analyses performed in the current browser
// session, newest first.
func RecentAnalyses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	history := loadRecentAnalyses(r)
	if history == nil {
		history = []recentAnalysis{}
	}
	writeJSON(w, http.StatusOK, history)
}
