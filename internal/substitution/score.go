package substitution

import (
	"math"
	"strings"

	"materio/models"
)

// sameCategoryBonus is added flat when both records share the exact category.
const sameCategoryBonus = 10

// Score computes how interchangeable candidate is with original, in [0, 100].
// required marks caller-specified properties whose matching importance is
// boosted for this call only.
//
// Each weighted property present on both records contributes
// propScore * weight / totalWeight, where propScore is 100 scaled down by the
// relative difference for numbers, or an all-or-nothing 100/0 for text
// compared case-insensitively. Properties absent on either side, and
// properties whose representations disagree (number vs text), contribute
// nothing while their weight stays in totalWeight.
func Score(original, candidate models.Material, required map[string]any) float64 {
	weights, totalWeight := scoringWeights(required)
	if totalWeight <= 0 {
		return 0
	}

	score := 0.0
	for _, pw := range weights {
		a := weightedProperty(&original, pw.name)
		b := weightedProperty(&candidate, pw.name)
		if a.kind == propertyAbsent || b.kind == propertyAbsent {
			continue
		}

		var propScore float64
		switch {
		case a.kind == propertyNumber && b.kind == propertyNumber:
			propScore = numericSimilarity(a.number, b.number)
		case a.kind == propertyText && b.kind == propertyText:
			if strings.EqualFold(a.text, b.text) {
				propScore = 100
			}
		default:
			// Mixed representations: skip, keeping the weight in the
			// denominator.
			continue
		}

		score += propScore * float64(pw.weight) / float64(totalWeight)
	}

	if original.Category == candidate.Category {
		score += sameCategoryBonus
	}

	return math.Min(score, 100)
}

// numericSimilarity maps the relative difference between two values onto
// [0, 100]. Two exact zeros are identical.
func numericSimilarity(a, b float64) float64 {
	maxVal := math.Max(math.Abs(a), math.Abs(b))
	if maxVal <= 0 {
		return 100
	}
	diff := math.Abs(a-b) / maxVal
	return (1 - math.Min(diff, 1)) * 100
}
