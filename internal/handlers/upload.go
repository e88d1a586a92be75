package handlers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"materio/internal/drawing"
	applog "materio/internal/log"
	"materio/internal/substitution"
)

// allowedExtensions whitelists the drawing formats accepted for upload.
var allowedExtensions = map[string]bool{
	"pdf": true,
	"dxf": true,
	"dwg": true,
}

// defaultMaterial is assumed when a drawing carries no recognizable material
// note.
const defaultMaterial = "steel"

type uploadResponse struct {
	drawing.Result
	Weight           float64                    `json:"weight"`
	Cost             float64                    `json:"cost"`
	Alternatives     []substitution.Alternative `json:"alternatives"`
	OriginalFilename string                     `json:"original_filename"`
	FilePath         string                     `json:"file_path"`
}

// Upload accepts a multipart technical drawing, stores it under a generated
// name, extracts dimensions and material, and responds with the weight/cost
// estimate plus ranked alternative materials.
func Upload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		applog.Debug(ctx, "upload without file part", "error", err)
		writeJSONError(w, http.StatusBadRequest, "no file part")
		return
	}
	defer file.Close()

	if strings.TrimSpace(header.Filename) == "" {
		writeJSONError(w, http.StatusBadRequest, "no selected file")
		return
	}

	extension := strings.TrimPrefix(strings.ToLower(filepath.Ext(header.Filename)), ".")
	if !allowedExtensions[extension] {
		writeJSONError(w, http.StatusBadRequest, "file type not allowed")
		return
	}

	storedName := fmt.Sprintf("%s.%s", strings.ReplaceAll(uuid.NewString(), "-", ""), extension)
	storedPath := filepath.Join(uploadDir, storedName)

	if err := saveUpload(file, storedPath); err != nil {
		applog.Error(ctx, "failed to store upload", "error", err, "path", storedPath)
		writeJSONError(w, http.StatusInternalServerError, "unable to store uploaded file")
		return
	}

	result := drawing.Process(ctx, storedPath, extension)

	materialName := result.Material
	if strings.TrimSpace(materialName) == "" {
		materialName = defaultMaterial
	}

	weight, err := estimator.Weight(ctx, materialName, result.Volume)
	if err != nil {
		applog.Error(ctx, "weight estimation failed", "error", err, "material", materialName)
		writeJSONError(w, http.StatusInternalServerError, "unable to estimate weight")
		return
	}

	cost, err := estimator.Cost(ctx, materialName, weight)
	if err != nil {
		applog.Error(ctx, "cost estimation failed", "error", err, "material", materialName)
		writeJSONError(w, http.StatusInternalServerError, "unable to estimate cost")
		return
	}

	alternatives, err := finder.FindAlternatives(ctx, materialName, &result.Dimensions, nil)
	if err != nil {
		applog.Error(ctx, "alternative search failed", "error", err, "material", materialName)
		writeJSONError(w, http.StatusInternalServerError, "unable to find alternatives")
		return
	}

	recordRecentAnalysis(r, recentAnalysis{
		File:     header.Filename,
		Material: materialName,
		WeightKg: weight,
		Cost:     cost,
	})

	writeJSON(w, http.StatusOK, uploadResponse{
		Result:           result,
		Weight:           weight,
		Cost:             cost,
		Alternatives:     alternatives,
		OriginalFilename: header.Filename,
		FilePath:         storedPath,
	})
}

func saveUpload(src io.Reader, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()
	_, err = io.Copy(dst, src)
	return err
}
