package substitution

import (
	"math"
	"testing"

	"materio/internal/drawing"
	"materio/models"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func dims(l, w, h float64) *drawing.Dimensions {
	return &drawing.Dimensions{Length: &l, Width: &w, Height: &h}
}

func TestCompareWeightAndCostWithDimensions(t *testing.T) {
	t.Parallel()

	steel := models.Material{Name: "AISI 1018 Steel", Density: 7.85, CostPerKg: 0.8}
	aluminum := models.Material{Name: "Aluminum 6061", Density: 2.7, CostPerKg: 2.5}

	cmp := Compare(steel, aluminum, dims(10, 10, 10))

	if cmp.Weight == nil {
		t.Fatal("expected weight delta with complete dimensions")
	}
	if !approxEqual(cmp.Weight.Original, 0.00785) {
		t.Fatalf("expected original weight 0.00785 kg, got %v", cmp.Weight.Original)
	}
	if !approxEqual(cmp.Weight.Alternative, 0.0027) {
		t.Fatalf("expected alternative weight 0.0027 kg, got %v", cmp.Weight.Alternative)
	}
	if cmp.Weight.Difference >= 0 {
		t.Fatalf("expected weight difference to be negative, got %v", cmp.Weight.Difference)
	}
	if cmp.Weight.PercentChange >= 0 {
		t.Fatalf("expected negative weight percent change, got %v", cmp.Weight.PercentChange)
	}

	if cmp.Cost == nil {
		t.Fatal("expected cost delta with complete dimensions")
	}
	if !approxEqual(cmp.Cost.Original, 0.8*0.00785) {
		t.Fatalf("unexpected original cost %v", cmp.Cost.Original)
	}
	if !approxEqual(cmp.Cost.Alternative, 2.5*0.0027) {
		t.Fatalf("unexpected alternative cost %v", cmp.Cost.Alternative)
	}
}

func TestCompareWithoutDimensionsUsesCostProxy(t *testing.T) {
	t.Parallel()

	steel := models.Material{Density: 7.85, CostPerKg: 0.8}
	aluminum := models.Material{Density: 2.7, CostPerKg: 2.5}

	cmp := Compare(steel, aluminum, nil)

	if cmp.Weight != nil {
		t.Fatalf("expected no weight delta without dimensions, got %+v", cmp.Weight)
	}
	if cmp.Cost == nil {
		t.Fatal("expected cost proxy delta")
	}
	if !approxEqual(cmp.Cost.Original, 0.8*7.85) {
		t.Fatalf("expected cost proxy 0.8*7.85, got %v", cmp.Cost.Original)
	}
	if !approxEqual(cmp.Cost.Alternative, 2.5*2.7) {
		t.Fatalf("expected cost proxy 2.5*2.7, got %v", cmp.Cost.Alternative)
	}
}

func TestCompareIncompleteDimensionsFallBack(t *testing.T) {
	t.Parallel()

	length := 50.0
	partial := &drawing.Dimensions{Length: &length}
	steel := models.Material{Density: 7.85, CostPerKg: 0.8}
	aluminum := models.Material{Density: 2.7, CostPerKg: 2.5}

	cmp := Compare(steel, aluminum, partial)

	if cmp.Weight == nil {
		t.Fatal("expected weight delta from fallback volume")
	}
	if !approxEqual(cmp.Weight.Original, WeightKg(7.85, fallbackVolumeMM3)) {
		t.Fatalf("expected fallback-volume weight, got %v", cmp.Weight.Original)
	}
}

func TestCompareEmptyDimensionsSkipWeight(t *testing.T) {
	t.Parallel()

	cmp := Compare(
		models.Material{Density: 7.85, CostPerKg: 0.8},
		models.Material{Density: 2.7, CostPerKg: 2.5},
		&drawing.Dimensions{},
	)
	if cmp.Weight != nil {
		t.Fatalf("expected empty dimensions to behave like none, got %+v", cmp.Weight)
	}
}

func TestCompareMechanicalDeltas(t *testing.T) {
	t.Parallel()

	original := models.Material{
		Density: 7.85, CostPerKg: 0.8,
		TensileStrength: floatPtr(440),
		YieldStrength:   floatPtr(370),
		ElasticModulus:  floatPtr(205),
	}
	candidate := models.Material{
		Density: 2.7, CostPerKg: 2.5,
		TensileStrength: floatPtr(310),
	}

	cmp := Compare(original, candidate, nil)

	if cmp.TensileStrength == nil {
		t.Fatal("expected tensile strength delta when both sides carry it")
	}
	if !approxEqual(cmp.TensileStrength.Difference, -130) {
		t.Fatalf("unexpected tensile difference %v", cmp.TensileStrength.Difference)
	}
	if cmp.YieldStrength != nil || cmp.ElasticModulus != nil {
		t.Fatalf("expected missing candidate properties to skip deltas: %+v", cmp)
	}
}

func TestNewDeltaZeroOriginalGuard(t *testing.T) {
	t.Parallel()

	delta := newDelta(0, 5)
	if delta.PercentChange != 0 {
		t.Fatalf("expected zero percent change when original is zero, got %v", delta.PercentChange)
	}
	if !approxEqual(delta.Difference, 5) {
		t.Fatalf("expected difference 5, got %v", delta.Difference)
	}
}

func TestWeightKg(t *testing.T) {
	t.Parallel()

	if got := WeightKg(7.85, 1000); !approxEqual(got, 0.00785) {
		t.Fatalf("WeightKg(7.85, 1000) = %v, want 0.00785", got)
	}
	if got := WeightKg(2.7, 1e6); !approxEqual(got, 2.7) {
		t.Fatalf("WeightKg(2.7, 1e6) = %v, want 2.7", got)
	}
}
