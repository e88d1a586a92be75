package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"materio/internal/drawing"
	applog "materio/internal/log"
)

type alternativesRequest struct {
	Material   string              `json:"material"`
	Dimensions *drawing.Dimensions `json:"dimensions"`
	Properties map[string]any      `json:"properties"`
}

// Alternatives ranks substitute materials for the named original. Required
// properties in the payload boost their weight in the similarity score.
func Alternatives(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	var payload alternativesRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		applog.Debug(ctx, "invalid alternatives payload", "error", err)
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if strings.TrimSpace(payload.Material) == "" {
		writeJSONError(w, http.StatusBadRequest, "material is required")
		return
	}

	results, err := finder.FindAlternatives(ctx, payload.Material, payload.Dimensions, payload.Properties)
	if err != nil {
		applog.Error(ctx, "alternative search failed", "error", err, "material", payload.Material)
		writeJSONError(w, http.StatusInternalServerError, "unable to find alternatives")
		return
	}

	writeJSON(w, http.StatusOK, results)
}

// Compatibility reports whether two named materials can be paired, checking
// galvanic series distance and thermal expansion mismatch.
func Compatibility(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	first := strings.TrimSpace(r.URL.Query().Get("first"))
	second := strings.TrimSpace(r.URL.Query().Get("second"))
	if first == "" || second == "" {
		writeJSONError(w, http.StatusBadRequest, "first and second material names are required")
		return
	}

	report, err := finder.Compatibility(ctx, first, second)
	if err != nil {
		applog.Error(ctx, "compatibility check failed", "error", err, "first", first, "second", second)
		writeJSONError(w, http.StatusInternalServerError, "unable to check compatibility")
		return
	}

	writeJSON(w, http.StatusOK, report)
}
