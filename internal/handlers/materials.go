package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"materio/internal/catalog"
	applog "materio/internal/log"
	"materio/models"
)

type materialRequest struct {
	Name                  string   `json:"name"`
	Category              string   `json:"category"`
	Density               float64  `json:"density"`
	CostPerKg             float64  `json:"cost_per_kg"`
	TensileStrength       *float64 `json:"tensile_strength"`
	YieldStrength         *float64 `json:"yield_strength"`
	ElasticModulus        *float64 `json:"elastic_modulus"`
	ThermalExpansion      *float64 `json:"thermal_expansion"`
	ThermalConductivity   *float64 `json:"thermal_conductivity"`
	ElectricalResistivity *float64 `json:"electrical_resistivity"`
	CorrosionResistance   string   `json:"corrosion_resistance"`
	Machinability         *int     `json:"machinability"`
	Weldability           *int     `json:"weldability"`
	CommonUses            string   `json:"common_uses"`

	ExtraProperties map[string]string `json:"extra_properties"`
}

// MaterialResource handles REST-style interactions for catalog materials.
func MaterialResource(w http.ResponseWriter, r *http.Request) {
	if materials == nil {
		applog.Debug(r.Context(), "material request without catalog")
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/materials")
	path = strings.Trim(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			listMaterials(w, r)
		case http.MethodPost:
			createMaterial(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	}

	segments := strings.Split(path, "/")
	switch segments[0] {
	case "search":
		searchMaterials(w, r)
		return
	case "category":
		if len(segments) < 2 {
			http.NotFound(w, r)
			return
		}
		listMaterialsByCategory(w, r, segments[1])
		return
	case "export":
		exportMaterials(w, r)
		return
	}

	idValue, err := strconv.ParseUint(segments[0], 10, 64)
	if err != nil {
		applog.Debug(r.Context(), "invalid material identifier", "identifier", segments[0], "error", err)
		http.NotFound(w, r)
		return
	}
	materialID := uint(idValue)

	switch r.Method {
	case http.MethodGet:
		showMaterial(w, r, materialID)
	case http.MethodPut:
		updateMaterial(w, r, materialID)
	case http.MethodDelete:
		deleteMaterial(w, r, materialID)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func listMaterials(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	results, err := materials.All(ctx)
	if err != nil {
		applog.Error(ctx, "failed to list materials", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to load materials")
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func searchMaterials(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeJSONError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}

	results, err := materials.Search(ctx, query)
	if err != nil {
		applog.Error(ctx, "material search failed", "error", err, "query", query)
		writeJSONError(w, http.StatusInternalServerError, "unable to search materials")
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func listMaterialsByCategory(w http.ResponseWriter, r *http.Request, category string) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()
	results, err := materials.ByCategory(ctx, category)
	if err != nil {
		applog.Error(ctx, "failed to list materials by category", "error", err, "category", category)
		writeJSONError(w, http.StatusInternalServerError, "unable to load materials")
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func exportMaterials(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="materials.csv"`)
	if err := materials.ExportCSV(ctx, w); err != nil {
		applog.Error(ctx, "material export failed", "error", err)
	}
}

func showMaterial(w http.ResponseWriter, r *http.Request, materialID uint) {
	ctx := r.Context()
	material, err := materials.ByID(ctx, materialID)
	if err != nil {
		applog.Error(ctx, "failed to load material", "error", err, "id", materialID)
		writeJSONError(w, http.StatusInternalServerError, "unable to load material")
		return
	}
	if material == nil {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, material)
}

func createMaterial(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	material, ok := decodeMaterialPayload(w, r)
	if !ok {
		return
	}

	if err := materials.Create(ctx, material); err != nil {
		if errors.Is(err, catalog.ErrMalformedMaterial) {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		applog.Error(ctx, "failed to create material", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to create material")
		return
	}
	writeJSON(w, http.StatusCreated, material)
}

func updateMaterial(w http.ResponseWriter, r *http.Request, materialID uint) {
	ctx := r.Context()
	existing, err := materials.ByID(ctx, materialID)
	if err != nil {
		applog.Error(ctx, "failed to load material for update", "error", err, "id", materialID)
		writeJSONError(w, http.StatusInternalServerError, "unable to load material")
		return
	}
	if existing == nil {
		http.NotFound(w, r)
		return
	}

	material, ok := decodeMaterialPayload(w, r)
	if !ok {
		return
	}

	if err := materials.Update(ctx, materialID, material); err != nil {
		if errors.Is(err, catalog.ErrMalformedMaterial) {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		applog.Error(ctx, "failed to update material", "error", err, "id", materialID)
		writeJSONError(w, http.StatusInternalServerError, "unable to update material")
		return
	}

	updated, err := materials.ByID(ctx, materialID)
	if err != nil || updated == nil {
		applog.Error(ctx, "failed to reload material after update", "error", err, "id", materialID)
		writeJSONError(w, http.StatusInternalServerError, "unable to load updated material")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func deleteMaterial(w http.ResponseWriter, r *http.Request, materialID uint) {
	ctx := r.Context()
	existing, err := materials.ByID(ctx, materialID)
	if err != nil {
		applog.Error(ctx, "failed to load material for delete", "error", err, "id", materialID)
		writeJSONError(w, http.StatusInternalServerError, "unable to load material")
		return
	}
	if existing == nil {
		http.NotFound(w, r)
		return
	}

	if err := materials.Delete(ctx, materialID); err != nil {
		applog.Error(ctx, "failed to delete material", "error", err, "id", materialID)
		writeJSONError(w, http.StatusInternalServerError, "unable to delete material")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeMaterialPayload(w http.ResponseWriter, r *http.Request) (*models.Material, bool) {
	var payload materialRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		applog.Debug(r.Context(), "invalid material payload", "error", err)
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return nil, false
	}

	material := &models.Material{
		Name:                  strings.TrimSpace(payload.Name),
		Category:              strings.TrimSpace(payload.Category),
		Density:               payload.Density,
		CostPerKg:             payload.CostPerKg,
		TensileStrength:       payload.TensileStrength,
		YieldStrength:         payload.YieldStrength,
		ElasticModulus:        payload.ElasticModulus,
		ThermalExpansion:      payload.ThermalExpansion,
		ThermalConductivity:   payload.ThermalConductivity,
		ElectricalResistivity: payload.ElectricalResistivity,
		CorrosionResistance:   strings.TrimSpace(payload.CorrosionResistance),
		Machinability:         payload.Machinability,
		Weldability:           payload.Weldability,
		CommonUses:            strings.TrimSpace(payload.CommonUses),
	}

	if len(payload.ExtraProperties) > 0 {
		material.ExtraProperties = make([]models.MaterialProperty, 0, len(payload.ExtraProperties))
		for name, value := range payload.ExtraProperties {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			material.ExtraProperties = append(material.ExtraProperties, models.MaterialProperty{
				Name:  name,
				Value: strings.TrimSpace(value),
			})
		}
	}

	return material, true
}
