package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"materio/internal/estimate"
	applog "materio/internal/log"
)

type recalculateRequest struct {
	Material string   `json:"material"`
	Volume   *float64 `json:"volume"`
}

type recalculateResponse struct {
	Weight float64 `json:"weight"`
	Cost   float64 `json:"cost"`
}

// Recalculate recomputes weight and cost for a material name and a volume in
// mm³, typically after the user corrects the extracted values.
func Recalculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	var payload recalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		applog.Debug(ctx, "invalid recalculate payload", "error", err)
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if strings.TrimSpace(payload.Material) == "" || payload.Volume == nil {
		writeJSONError(w, http.StatusBadRequest, "material and volume are required")
		return
	}

	weight, err := estimator.Weight(ctx, payload.Material, *payload.Volume)
	if err != nil {
		applog.Error(ctx, "weight recalculation failed", "error", err, "material", payload.Material)
		writeJSONError(w, http.StatusInternalServerError, "unable to estimate weight")
		return
	}

	cost, err := estimator.Cost(ctx, payload.Material, weight)
	if err != nil {
		applog.Error(ctx, "cost recalculation failed", "error", err, "material", payload.Material)
		writeJSONError(w, http.StatusInternalServerError, "unable to estimate cost")
		return
	}

	writeJSON(w, http.StatusOK, recalculateResponse{Weight: weight, Cost: cost})
}

type savingsRequest struct {
	Original    string   `json:"original"`
	Alternative string   `json:"alternative"`
	Volume      *float64 `json:"volume"`
}

type savingsResponse struct {
	Weight estimate.Savings `json:"weight"`
	Cost   estimate.Savings `json:"cost"`
}

// Savings reports the weight and cost gained by switching from one material
// to another at a fixed part volume.
func Savings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	var payload savingsRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		applog.Debug(ctx, "invalid savings payload", "error", err)
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if strings.TrimSpace(payload.Original) == "" || strings.TrimSpace(payload.Alternative) == "" || payload.Volume == nil {
		writeJSONError(w, http.StatusBadRequest, "original, alternative, and volume are required")
		return
	}

	weightSavings, err := estimator.WeightSavings(ctx, payload.Original, payload.Alternative, *payload.Volume)
	if err != nil {
		applog.Error(ctx, "weight savings failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to compute weight savings")
		return
	}

	costSavings, err := estimator.CostSavings(ctx, payload.Original, payload.Alternative, *payload.Volume)
	if err != nil {
		applog.Error(ctx, "cost savings failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to compute cost savings")
		return
	}

	writeJSON(w, http.StatusOK, savingsResponse{Weight: weightSavings, Cost: costSavings})
}
