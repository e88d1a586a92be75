// Package catalog provides read and write access to the material catalog.
// From the substitution core's point of view it is the storage collaborator:
// a queryable source of MaterialRecord values.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	applog "materio/internal/log"
	"materio/models"
)

// ErrMalformedMaterial reports a record that is unusable for weight/cost
// arithmetic. Missing optional properties are normal sparse data; a missing
// density or unit cost signals catalog corruption and is surfaced loudly.
var ErrMalformedMaterial = errors.New("material record requires a positive density and cost_per_kg")

// Repository owns a single long-lived database handle for catalog access.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// All returns every material in primary-key order.
func (r *Repository) All(ctx context.Context) ([]models.Material, error) {
	var materials []models.Material
	err := r.db.WithContext(ctx).
		Preload("ExtraProperties").
		Order("id asc").
		Find(&materials).Error
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	return materials, nil
}

// ByName resolves a material by substring match on its name, returning the
// first match in primary-key order. Case sensitivity follows the SQL engine's
// LIKE semantics (sqlite matches ASCII case-insensitively, postgres does not).
// An unresolved name returns (nil, nil): absence is a valid state here, not an
// error.
func (r *Repository) ByName(ctx context.Context, name string) (*models.Material, error) {
	var material models.Material
	err := r.db.WithContext(ctx).
		Preload("ExtraProperties").
		Where("name LIKE ?", "%"+name+"%").
		Order("id asc").
		First(&material).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find material by name %q: %w", name, err)
	}
	return &material, nil
}

// ByID loads a single material. Not found returns (nil, nil).
func (r *Repository) ByID(ctx context.Context, id uint) (*models.Material, error) {
	var material models.Material
	err := r.db.WithContext(ctx).Preload("ExtraProperties").First(&material, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find material %d: %w", id, err)
	}
	return &material, nil
}

// ByCategory returns all materials with an exact category match.
func (r *Repository) ByCategory(ctx context.Context, category string) ([]models.Material, error) {
	var materials []models.Material
	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("id asc").
		Find(&materials).Error
	if err != nil {
		return nil, fmt.Errorf("list materials by category %q: %w", category, err)
	}
	return materials, nil
}

// Search matches the query as a substring against name or category.
func (r *Repository) Search(ctx context.Context, query string) ([]models.Material, error) {
	pattern := "%" + query + "%"
	var materials []models.Material
	err := r.db.WithContext(ctx).
		Where("name LIKE ? OR category LIKE ?", pattern, pattern).
		Order("id asc").
		Find(&materials).Error
	if err != nil {
		return nil, fmt.Errorf("search materials %q: %w", query, err)
	}
	return materials, nil
}

// Create validates and stores a new material record.
func (r *Repository) Create(ctx context.Context, material *models.Material) error {
	if err := validate(material); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(material).Error; err != nil {
		return fmt.Errorf("create material %q: %w", material.Name, err)
	}
	applog.Debug(ctx, "material created", "id", material.ID, "name", material.Name)
	return nil
}

// Update replaces the attribute set of an existing material. Extra properties,
// when provided, replace the existing side-table rows.
func (r *Repository) Update(ctx context.Context, id uint, material *models.Material) error {
	if err := validate(material); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Material
		if err := tx.First(&existing, id).Error; err != nil {
			return fmt.Errorf("load material %d: %w", id, err)
		}

		updates := map[string]any{
			"name":                   material.Name,
			"category":               material.Category,
			"density":                material.Density,
			"cost_per_kg":            material.CostPerKg,
			"tensile_strength":       material.TensileStrength,
			"yield_strength":         material.YieldStrength,
			"elastic_modulus":        material.ElasticModulus,
			"thermal_expansion":      material.ThermalExpansion,
			"thermal_conductivity":   material.ThermalConductivity,
			"electrical_resistivity": material.ElectricalResistivity,
			"corrosion_resistance":   material.CorrosionResistance,
			"machinability":          material.Machinability,
			"weldability":            material.Weldability,
			"common_uses":            material.CommonUses,
		}
		if err := tx.Model(&existing).Updates(updates).Error; err != nil {
			return fmt.Errorf("update material %d: %w", id, err)
		}

		if material.ExtraProperties != nil {
			if err := tx.Where("material_id = ?", id).Delete(&models.MaterialProperty{}).Error; err != nil {
				return fmt.Errorf("clear extra properties for %d: %w", id, err)
			}
			for i := range material.ExtraProperties {
				prop := material.ExtraProperties[i]
				prop.ID = 0
				prop.MaterialID = id
				if err := tx.Create(&prop).Error; err != nil {
					return fmt.Errorf("store extra property %q: %w", prop.Name, err)
				}
			}
		}

		material.ID = id
		return nil
	})
}

// Delete removes a material and its extra properties.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("material_id = ?", id).Delete(&models.MaterialProperty{}).Error; err != nil {
			return fmt.Errorf("delete extra properties for %d: %w", id, err)
		}
		if err := tx.Delete(&models.Material{}, id).Error; err != nil {
			return fmt.Errorf("delete material %d: %w", id, err)
		}
		return nil
	})
}

func validate(material *models.Material) error {
	if material == nil {
		return ErrMalformedMaterial
	}
	if strings.TrimSpace(material.Name) == "" || strings.TrimSpace(material.Category) == "" {
		return fmt.Errorf("%w: name and category are required", ErrMalformedMaterial)
	}
	if material.Density <= 0 || material.CostPerKg <= 0 {
		return ErrMalformedMaterial
	}
	return nil
}
