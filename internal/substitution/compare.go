package substitution

import (
	"materio/internal/drawing"
	"materio/models"
)

// fallbackVolumeMM3 is used when dimensions are supplied but incomplete.
// The literal predates the mm³ convention used elsewhere and is kept as-is;
// treating it as mm³ yields a deliberately rough 1 cm³ envelope.
const fallbackVolumeMM3 = 1000.0

// Delta itemizes one compared quantity between the original material and a
// candidate.
type Delta struct {
	Original      float64 `json:"original"`
	Alternative   float64 `json:"alternative"`
	Difference    float64 `json:"difference"`
	PercentChange float64 `json:"percent_change"`
}

// Comparison is the side-by-side breakdown attached to each ranked
// candidate. Entries are nil when the inputs did not allow computing them.
type Comparison struct {
	Weight          *Delta `json:"weight,omitempty"`
	Cost            *Delta `json:"cost,omitempty"`
	TensileStrength *Delta `json:"tensile_strength,omitempty"`
	YieldStrength   *Delta `json:"yield_strength,omitempty"`
	ElasticModulus  *Delta `json:"elastic_modulus,omitempty"`
}

// Compare derives weight, cost, and mechanical deltas between the original
// and a candidate. The weight delta needs part dimensions; without them the
// cost delta falls back to cost_per_kg × density, a proxy magnitude rather
// than a real cost. Pure function over its inputs.
func Compare(original, candidate models.Material, dims *drawing.Dimensions) Comparison {
	var cmp Comparison

	if dims != nil && !dims.Empty() {
		volume := fallbackVolumeMM3
		if dims.Complete() {
			volume = dims.Volume()
		}
		cmp.Weight = newDelta(
			WeightKg(original.Density, volume),
			WeightKg(candidate.Density, volume),
		)
	}

	if cmp.Weight != nil {
		cmp.Cost = newDelta(
			original.CostPerKg*cmp.Weight.Original,
			candidate.CostPerKg*cmp.Weight.Alternative,
		)
	} else {
		cmp.Cost = newDelta(
			original.CostPerKg*original.Density,
			candidate.CostPerKg*candidate.Density,
		)
	}

	if original.TensileStrength != nil && candidate.TensileStrength != nil {
		cmp.TensileStrength = newDelta(*original.TensileStrength, *candidate.TensileStrength)
	}
	if original.YieldStrength != nil && candidate.YieldStrength != nil {
		cmp.YieldStrength = newDelta(*original.YieldStrength, *candidate.YieldStrength)
	}
	if original.ElasticModulus != nil && candidate.ElasticModulus != nil {
		cmp.ElasticModulus = newDelta(*original.ElasticModulus, *candidate.ElasticModulus)
	}

	return cmp
}

// WeightKg converts a density in g/cm³ and a volume in mm³ to kilograms.
func WeightKg(density, volumeMM3 float64) float64 {
	return density * (volumeMM3 / 1000.0) / 1000.0
}

// newDelta builds a Delta with a zero-guarded percent change: when the
// original quantity is not positive the percent change is reported as 0
// rather than an infinity.
func newDelta(original, alternative float64) *Delta {
	delta := &Delta{
		Original:    original,
		Alternative: alternative,
		Difference:  alternative - original,
	}
	if original > 0 {
		delta.PercentChange = delta.Difference / original * 100
	}
	return delta
}
