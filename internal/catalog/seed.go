package catalog

import (
	"context"
	"fmt"

	applog "materio/internal/log"
	"materio/models"
)

// Seed loads the reference material dataset when the catalog is empty. The
// set covers common steels, aluminum and copper alloys, engineering plastics,
// titanium, magnesium, and a carbon fiber composite.
func (r *Repository) Seed(ctx context.Context) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Material{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count materials: %w", err)
	}
	if count > 0 {
		applog.Debug(ctx, "catalog already populated", "materials", count)
		return nil
	}

	defaults := defaultMaterials()
	for i := range defaults {
		if err := r.Create(ctx, &defaults[i]); err != nil {
			return fmt.Errorf("seed material %q: %w", defaults[i].Name, err)
		}
	}

	applog.Info(ctx, "catalog seeded with reference materials", "materials", len(defaults))
	return nil
}

func defaultMaterials() []models.Material {
	return []models.Material{
		newMaterial("AISI 1018 Steel", "Steel", 7.87, 1.2, 440, 370, 205, 11.5, 51.9, 15.9, "Low", 70, 90, "General purpose, shafts, pins"),
		newMaterial("AISI 304 Stainless Steel", "Steel", 8.0, 4.5, 515, 205, 193, 17.2, 16.2, 72.0, "High", 45, 70, "Food equipment, chemical containers"),
		newMaterial("AISI 4140 Steel", "Steel", 7.85, 1.8, 655, 415, 210, 12.3, 42.6, 22.0, "Medium", 55, 65, "Gears, axles, shafts"),
		newMaterial("Tool Steel A2", "Steel", 7.86, 8.0, 1620, 1520, 203, 10.8, 24.0, 65.0, "Medium", 30, 20, "Cutting tools, dies"),
		newMaterial("Aluminum 6061-T6", "Aluminum", 2.7, 3.5, 310, 276, 68.9, 23.6, 167, 3.7, "Medium", 85, 50, "Structural components, frames"),
		newMaterial("Aluminum 7075-T6", "Aluminum", 2.81, 5.2, 572, 503, 71.7, 23.4, 130, 5.2, "Medium", 70, 30, "Aircraft components, high-stress parts"),
		newMaterial("Aluminum 1100-H14", "Aluminum", 2.71, 3.0, 110, 103, 68.9, 23.6, 222, 2.9, "High", 95, 90, "Chemical equipment, heat exchangers"),
		newMaterial("Brass C360", "Copper", 8.5, 7.0, 385, 310, 97, 20.5, 115, 6.6, "Medium", 90, 60, "Plumbing, decorative hardware"),
		newMaterial("Bronze C932", "Copper", 7.6, 9.0, 310, 152, 103, 18.0, 45, 13.0, "High", 75, 40, "Bearings, bushings, gears"),
		newMaterial("Copper C11000", "Copper", 8.94, 8.5, 220, 69, 117, 17.0, 391, 1.7, "High", 85, 80, "Electrical components, heat exchangers"),
		newMaterial("ABS", "Plastic", 1.05, 2.8, 40, 40, 2.3, 90.0, 0.17, 1e15, "High", 90, 0, "Consumer products, automotive components"),
		newMaterial("Polycarbonate", "Plastic", 1.2, 4.5, 65, 62, 2.4, 65.0, 0.21, 1e16, "High", 85, 0, "Safety equipment, electronic housings"),
		newMaterial("Nylon 6/6", "Plastic", 1.14, 3.8, 82, 82, 2.9, 80.0, 0.25, 1e14, "High", 80, 0, "Gears, bearings, wear components"),
		newMaterial("PEEK", "Plastic", 1.32, 90.0, 100, 97, 3.6, 47.0, 0.25, 1e16, "Very High", 70, 0, "High-performance components, aerospace"),
		newMaterial("Ti-6Al-4V", "Titanium", 4.43, 35.0, 950, 880, 113.8, 8.6, 6.7, 170.0, "Very High", 30, 40, "Aerospace, medical implants"),
		newMaterial("AZ31B Magnesium", "Magnesium", 1.77, 6.0, 260, 200, 45, 26.0, 96, 9.2, "Low", 70, 50, "Lightweight components, electronics"),
		newMaterial("Carbon Fiber Composite", "Composite", 1.6, 50.0, 600, 570, 70, 2.0, 5.0, 1e13, "Very High", 20, 0, "Aerospace, high-performance components"),
	}
}

func newMaterial(name, category string, density, costPerKg, tensile, yield, modulus, expansion, conductivity, resistivity float64, corrosion string, machinability, weldability int, uses string) models.Material {
	return models.Material{
		Name:                  name,
		Category:              category,
		Density:               density,
		CostPerKg:             costPerKg,
		TensileStrength:       floatPtr(tensile),
		YieldStrength:         floatPtr(yield),
		ElasticModulus:        floatPtr(modulus),
		ThermalExpansion:      floatPtr(expansion),
		ThermalConductivity:   floatPtr(conductivity),
		ElectricalResistivity: floatPtr(resistivity),
		CorrosionResistance:   corrosion,
		Machinability:         intPtr(machinability),
		Weldability:           intPtr(weldability),
		CommonUses:            uses,
	}
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }
