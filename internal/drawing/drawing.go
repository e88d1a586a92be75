// Package drawing ingests technical drawing files and extracts approximate
// part dimensions, a declared material, annotations, and an estimated volume.
// The heuristics are deliberately rough: text is scanned for material
// keywords and the largest measurements found become the principal
// dimensions of a rectangular envelope.
package drawing

import (
	"context"
	"fmt"
	"sort"
	"strings"

	applog "materio/internal/log"
)

// Dimensions holds the principal part dimensions in millimetres. Fields are
// nil when the corresponding measurement could not be extracted.
type Dimensions struct {
	Length *float64 `json:"length,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
}

// Empty reports whether no dimension was extracted at all.
func (d Dimensions) Empty() bool {
	return d.Length == nil && d.Width == nil && d.Height == nil
}

// Complete reports whether all three principal dimensions are known.
func (d Dimensions) Complete() bool {
	return d.Length != nil && d.Width != nil && d.Height != nil
}

// Volume returns the rectangular envelope volume in mm³. Missing length or
// width count as zero; a missing height defaults to 1.
func (d Dimensions) Volume() float64 {
	length, width, height := 0.0, 0.0, 1.0
	if d.Length != nil {
		length = *d.Length
	}
	if d.Width != nil {
		width = *d.Width
	}
	if d.Height != nil {
		height = *d.Height
	}
	return length * width * height
}

// Result is the extraction outcome handed to the estimation and substitution
// components: a (material, dimensions, volume) triple plus the raw notes that
// were found along the way. Extraction failures are reported in Error rather
// than aborting the request.
type Result struct {
	Dimensions  Dimensions `json:"dimensions"`
	Material    string     `json:"material,omitempty"`
	Annotations []string   `json:"annotations"`
	Tolerances  []string   `json:"tolerances"`
	Volume      float64    `json:"volume"`
	Error       string     `json:"error,omitempty"`
}

// Process extracts drawing information from the file at path. The extension
// decides the parser; dwg files are accepted by the upload surface but not
// parsed yet.
func Process(ctx context.Context, path, extension string) Result {
	applog.Info(ctx, "processing drawing", "path", path, "extension", extension)

	result := Result{
		Annotations: []string{},
		Tolerances:  []string{},
	}

	switch strings.ToLower(extension) {
	case "pdf":
		processPDF(ctx, path, &result)
	case "dxf":
		processDXF(ctx, path, &result)
	case "dwg":
		result.Error = "DWG processing not fully implemented yet"
	default:
		result.Error = fmt.Sprintf("unsupported file extension: %s", extension)
	}

	if result.Error != "" {
		applog.Warn(ctx, "drawing processed with error", "path", path, "error", result.Error)
	}
	return result
}

// principalDimensions turns a set of extracted measurements into a
// length/width/height triple, taking the largest values first. With two
// measurements the height defaults to 1; with one, the width is estimated as
// half the length.
func principalDimensions(measurements []float64) Dimensions {
	sorted := make([]float64, len(measurements))
	copy(sorted, measurements)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	var dims Dimensions
	switch {
	case len(sorted) >= 3:
		dims.Length = ptr(sorted[0])
		dims.Width = ptr(sorted[1])
		dims.Height = ptr(sorted[2])
	case len(sorted) == 2:
		dims.Length = ptr(sorted[0])
		dims.Width = ptr(sorted[1])
		dims.Height = ptr(1.0)
	case len(sorted) == 1:
		dims.Length = ptr(sorted[0])
		dims.Width = ptr(sorted[0] / 2)
		dims.Height = ptr(1.0)
	}
	return dims
}

func ptr(v float64) *float64 { return &v }
