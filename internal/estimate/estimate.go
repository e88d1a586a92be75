// Package estimate turns extracted part volumes into weight and cost
// figures. Unresolvable material names degrade to mild steel defaults so
// that a drawing with an unrecognized material note still yields a usable
// first estimate.
package estimate

import (
	"context"

	applog "materio/internal/log"
	"materio/internal/substitution"
	"materio/models"
)

const (
	// fallbackDensity is mild steel in g/cm³.
	fallbackDensity = 7.85
	// fallbackCostPerKg is a generic carbon steel price.
	fallbackCostPerKg = 2.0
)

// Catalog is the read interface the calculator needs; ByName returns
// (nil, nil) for an unresolved name.
type Catalog interface {
	ByName(ctx context.Context, name string) (*models.Material, error)
}

// Calculator computes weights and costs from catalog densities and prices.
type Calculator struct {
	catalog Catalog
}

func NewCalculator(catalog Catalog) *Calculator {
	return &Calculator{catalog: catalog}
}

// Weight returns the part weight in kilograms for a material name and a
// volume in mm³.
func (c *Calculator) Weight(ctx context.Context, materialName string, volumeMM3 float64) (float64, error) {
	density := fallbackDensity
	material, err := c.catalog.ByName(ctx, materialName)
	if err != nil {
		return 0, err
	}
	if material != nil {
		density = material.Density
	} else {
		applog.Debug(ctx, "material not found, using steel density", "material", materialName)
	}
	return substitution.WeightKg(density, volumeMM3), nil
}

// Cost returns the material cost for a weight in kilograms.
func (c *Calculator) Cost(ctx context.Context, materialName string, weightKg float64) (float64, error) {
	costPerKg := fallbackCostPerKg
	material, err := c.catalog.ByName(ctx, materialName)
	if err != nil {
		return 0, err
	}
	if material != nil {
		costPerKg = material.CostPerKg
	} else {
		applog.Debug(ctx, "material not found, using default unit cost", "material", materialName)
	}
	return weightKg * costPerKg, nil
}

// Savings reports the gain from switching materials for a fixed volume.
type Savings struct {
	Original      float64 `json:"original"`
	Alternative   float64 `json:"alternative"`
	Difference    float64 `json:"difference"`
	PercentChange float64 `json:"percent_change"`
}

// WeightSavings compares part weights between two materials at the same
// volume. A positive difference means the alternative is lighter.
func (c *Calculator) WeightSavings(ctx context.Context, originalName, alternativeName string, volumeMM3 float64) (Savings, error) {
	originalWeight, err := c.Weight(ctx, originalName, volumeMM3)
	if err != nil {
		return Savings{}, err
	}
	alternativeWeight, err := c.Weight(ctx, alternativeName, volumeMM3)
	if err != nil {
		return Savings{}, err
	}
	return newSavings(originalWeight, alternativeWeight), nil
}

// CostSavings compares material costs between two materials at the same
// volume, weighing each with its own density.
func (c *Calculator) CostSavings(ctx context.Context, originalName, alternativeName string, volumeMM3 float64) (Savings, error) {
	originalWeight, err := c.Weight(ctx, originalName, volumeMM3)
	if err != nil {
		return Savings{}, err
	}
	alternativeWeight, err := c.Weight(ctx, alternativeName, volumeMM3)
	if err != nil {
		return Savings{}, err
	}

	originalCost, err := c.Cost(ctx, originalName, originalWeight)
	if err != nil {
		return Savings{}, err
	}
	alternativeCost, err := c.Cost(ctx, alternativeName, alternativeWeight)
	if err != nil {
		return Savings{}, err
	}
	return newSavings(originalCost, alternativeCost), nil
}

// AlternativeWeights computes the part weight for the original material and
// each alternative at a fixed volume, keyed by material name.
func (c *Calculator) AlternativeWeights(ctx context.Context, originalName string, volumeMM3 float64, alternativeNames []string) (map[string]float64, error) {
	weights := make(map[string]float64, len(alternativeNames)+1)

	weight, err := c.Weight(ctx, originalName, volumeMM3)
	if err != nil {
		return nil, err
	}
	weights[originalName] = weight

	for _, name := range alternativeNames {
		weight, err := c.Weight(ctx, name, volumeMM3)
		if err != nil {
			return nil, err
		}
		weights[name] = weight
	}
	return weights, nil
}

// AlternativeCosts prices a weight map produced by AlternativeWeights.
func (c *Calculator) AlternativeCosts(ctx context.Context, weights map[string]float64) (map[string]float64, error) {
	costs := make(map[string]float64, len(weights))
	for name, weight := range weights {
		cost, err := c.Cost(ctx, name, weight)
		if err != nil {
			return nil, err
		}
		costs[name] = cost
	}
	return costs, nil
}

func newSavings(original, alternative float64) Savings {
	s := Savings{
		Original:    original,
		Alternative: alternative,
		Difference:  original - alternative,
	}
	if original > 0 {
		s.PercentChange = s.Difference / original * 100
	}
	return s
}
