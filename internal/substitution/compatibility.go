package substitution

import (
	"context"
	"math"
	"strings"
)

// galvanicSeries orders common metal families from anodic to cathodic. The
// slice is scanned in order and the first metal whose name appears in a
// material's category determines that material's rank; a category matching
// none leaves the rank undetermined.
var galvanicSeries = []struct {
	metal string
	rank  int
}{
	{"magnesium", 1},
	{"aluminum", 2},
	{"steel", 3},
	{"iron", 3},
	{"nickel", 4},
	{"copper", 5},
	{"titanium", 6},
}

// maxThermalExpansionGap is the largest tolerated difference between thermal
// expansion coefficients before a pairing is flagged, in the catalog's
// stored units.
const maxThermalExpansionGap = 10.0

// CompatibilityReport is the structured verdict of a pairwise material
// compatibility check.
type CompatibilityReport struct {
	Compatible         bool     `json:"compatible"`
	Reason             string   `json:"reason,omitempty"`
	GalvanicDifference *int     `json:"galvanic_difference,omitempty"`
	ThermalDifference  *float64 `json:"thermal_difference,omitempty"`
	Notes              string   `json:"notes,omitempty"`
}

// Compatibility checks whether two named materials can be used in contact.
// It flags galvanic corrosion risk when the materials sit two or more
// positions apart in the galvanic series, then large thermal expansion
// mismatches. Unresolvable names yield a not-compatible verdict rather than
// an error.
func (f *Finder) Compatibility(ctx context.Context, firstName, secondName string) (CompatibilityReport, error) {
	first, err := f.catalog.ByName(ctx, firstName)
	if err != nil {
		return CompatibilityReport{}, err
	}
	second, err := f.catalog.ByName(ctx, secondName)
	if err != nil {
		return CompatibilityReport{}, err
	}

	if first == nil || second == nil {
		return CompatibilityReport{
			Compatible: false,
			Reason:     "One or both materials not found",
		}, nil
	}

	rankA, okA := galvanicRank(first.Category)
	rankB, okB := galvanicRank(second.Category)
	if okA && okB {
		gap := rankA - rankB
		if gap < 0 {
			gap = -gap
		}
		if gap >= 2 {
			return CompatibilityReport{
				Compatible:         false,
				Reason:             "Potential galvanic corrosion risk",
				GalvanicDifference: &gap,
			}, nil
		}
	}

	if first.ThermalExpansion != nil && second.ThermalExpansion != nil {
		gap := math.Abs(*first.ThermalExpansion - *second.ThermalExpansion)
		if gap > maxThermalExpansionGap {
			return CompatibilityReport{
				Compatible:        false,
				Reason:            "Large difference in thermal expansion coefficients",
				ThermalDifference: &gap,
			}, nil
		}
	}

	return CompatibilityReport{
		Compatible: true,
		Notes:      "Materials appear compatible for most applications",
	}, nil
}

func galvanicRank(category string) (int, bool) {
	lowered := strings.ToLower(category)
	for _, entry := range galvanicSeries {
		if strings.Contains(lowered, entry.metal) {
			return entry.rank, true
		}
	}
	return 0, false
}
