package substitution

import (
	"math"
	"testing"

	"materio/models"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// fullMaterial returns a record with every weighted property populated so the
// scorer has no absent-property gaps.
func fullMaterial(id uint, name, category string) models.Material {
	return models.Material{
		ID:                  id,
		Name:                name,
		Category:            category,
		Density:             7.85,
		CostPerKg:           0.8,
		TensileStrength:     floatPtr(440),
		YieldStrength:       floatPtr(370),
		ElasticModulus:      floatPtr(205),
		ThermalExpansion:    floatPtr(11.7),
		ThermalConductivity: floatPtr(51.9),
		CorrosionResistance: "Low",
		Machinability:       intPtr(70),
		Weldability:         intPtr(90),
	}
}

func TestScoreIdenticalFullyPopulated(t *testing.T) {
	t.Parallel()

	m := fullMaterial(1, "AISI 1018 Steel", "Metal - Steel")
	got := Score(m, m, nil)
	if math.Abs(got-100) > 1e-9 {
		t.Fatalf("expected identical records to score 100, got %v", got)
	}
}

func TestScoreBounded(t *testing.T) {
	t.Parallel()

	steel := fullMaterial(1, "Steel", "Metal - Steel")
	aluminum := models.Material{
		ID:                  2,
		Name:                "Aluminum 6061",
		Category:            "Metal - Aluminum",
		Density:             2.7,
		CostPerKg:           2.5,
		TensileStrength:     floatPtr(310),
		YieldStrength:       floatPtr(276),
		ThermalExpansion:    floatPtr(23.6),
		CorrosionResistance: "Good",
		Machinability:       intPtr(85),
	}
	empty := models.Material{ID: 3, Name: "Mystery", Category: "Unknown"}

	pairs := []struct {
		a, b models.Material
	}{
		{steel, aluminum},
		{steel, empty},
		{empty, empty},
		{aluminum, steel},
	}
	for _, pair := range pairs {
		got := Score(pair.a, pair.b, map[string]any{"tensile_strength": true})
		if got < 0 || got > 100 {
			t.Fatalf("score out of range for %s vs %s: %v", pair.a.Name, pair.b.Name, got)
		}
	}
}

func TestScoreSymmetricWithoutRequired(t *testing.T) {
	t.Parallel()

	a := fullMaterial(1, "Steel", "Metal - Steel")
	b := fullMaterial(2, "Stainless", "Metal - Steel")
	b.TensileStrength = floatPtr(515)
	b.CorrosionResistance = "Excellent"
	b.Machinability = intPtr(45)

	left := Score(a, b, nil)
	right := Score(b, a, nil)
	if math.Abs(left-right) > 1e-9 {
		t.Fatalf("expected symmetric score, got %v and %v", left, right)
	}
}

func TestScoreRequiredBoostInflatesDenominator(t *testing.T) {
	t.Parallel()

	a := fullMaterial(1, "Steel", "Metal - Steel")
	b := fullMaterial(2, "Other Steel", "Metal - Steel")
	b.TensileStrength = floatPtr(220)
	a.ThermalConductivity = nil
	b.ThermalConductivity = nil

	base := Score(a, b, nil)
	// Boosting a property neither record carries grows the denominator and
	// dilutes every other contribution.
	boosted := Score(a, b, map[string]any{"thermal_conductivity": true})
	if boosted >= base {
		t.Fatalf("expected boosted absent property to lower the score: base %v, boosted %v", base, boosted)
	}

	// Keys outside the weight table are ignored entirely.
	unknown := Score(a, b, map[string]any{"electrical_resistivity": true})
	if math.Abs(unknown-base) > 1e-9 {
		t.Fatalf("expected unknown required key to leave the score unchanged: base %v, got %v", base, unknown)
	}
}

func TestScoreSameCategoryBonus(t *testing.T) {
	t.Parallel()

	a := fullMaterial(1, "Steel", "Metal - Steel")
	b := fullMaterial(2, "Other", "Metal - Steel")
	b.TensileStrength = floatPtr(220)
	b.YieldStrength = floatPtr(180)

	sameCategory := Score(a, b, nil)
	b.Category = "Metal - Aluminum"
	differentCategory := Score(a, b, nil)

	if math.Abs(sameCategory-differentCategory-sameCategoryBonus) > 1e-9 {
		t.Fatalf("expected exactly the category bonus between %v and %v", sameCategory, differentCategory)
	}
}

func TestScoreMixedRepresentationSkipped(t *testing.T) {
	t.Parallel()

	a := fullMaterial(1, "Steel", "Metal - Steel")
	b := fullMaterial(2, "Other", "Metal - Steel")
	b.Machinability = nil
	b.ExtraProperties = []models.MaterialProperty{{Name: "machinability", Value: "good"}}

	mixed := Score(a, b, nil)
	b.ExtraProperties = nil
	absent := Score(a, b, nil)

	if math.Abs(mixed-absent) > 1e-9 {
		t.Fatalf("expected mixed number/text property to score like an absent one: %v vs %v", mixed, absent)
	}
}

func TestNumericSimilarity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b float64
		want float64
	}{
		{"identical", 440, 440, 100},
		{"half", 100, 50, 50},
		{"both zero", 0, 0, 100},
		{"opposite signs clamp", 100, -100, 0},
		{"order independent", 50, 100, 50},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := numericSimilarity(tc.a, tc.b)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("numericSimilarity(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestScoringWeightsDoNotMutateBaseTable(t *testing.T) {
	t.Parallel()

	before := make([]propertyWeight, len(basePropertyWeights))
	copy(before, basePropertyWeights)

	_, total := scoringWeights(map[string]any{"tensile_strength": true, "weldability": true})
	if want := 56 + 2*requiredPropertyBoost; total != want {
		t.Fatalf("expected boosted total weight %d, got %d", want, total)
	}

	for i, pw := range basePropertyWeights {
		if pw != before[i] {
			t.Fatalf("base weight table mutated at %d: %+v", i, pw)
		}
	}
}
