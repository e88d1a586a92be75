// Package substitution ranks candidate replacement materials against an
// original by weighted multi-property similarity and derives weight, cost,
// and mechanical deltas for the top candidates.
package substitution

// propertyWeight pairs a weighted property name with its base importance.
type propertyWeight struct {
	name   string
	weight int
}

// basePropertyWeights is the immutable base weight table. Scoring always
// works on a per-call copy so required-property boosts cannot leak between
// requests. The slice ordering fixes the accumulation order, keeping scores
// bit-for-bit deterministic across runs.
var basePropertyWeights = []propertyWeight{
	{name: "tensile_strength", weight: 10},
	{name: "yield_strength", weight: 10},
	{name: "elastic_modulus", weight: 8},
	{name: "thermal_expansion", weight: 5},
	{name: "thermal_conductivity", weight: 5},
	{name: "corrosion_resistance", weight: 7},
	{name: "machinability", weight: 6},
	{name: "weldability", weight: 5},
}

// requiredPropertyBoost is added to the base weight of every property the
// caller marks as required.
const requiredPropertyBoost = 5

// scoringWeights returns a request-scoped copy of the weight table with
// required-property boosts applied, along with the total weight. Keys in
// required that are not weighted properties are ignored. Note the total
// includes boosted weights even when neither record carries the property;
// that denominator inflation dilutes the other contributions on purpose.
func scoringWeights(required map[string]any) ([]propertyWeight, int) {
	weights := make([]propertyWeight, len(basePropertyWeights))
	copy(weights, basePropertyWeights)

	if len(required) > 0 {
		for i := range weights {
			if _, ok := required[weights[i].name]; ok {
				weights[i].weight += requiredPropertyBoost
			}
		}
	}

	total := 0
	for _, pw := range weights {
		total += pw.weight
	}
	return weights, total
}
