package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"materio/models"
)

var csvHeader = []string{
	"name", "category", "density", "cost_per_kg",
	"tensile_strength", "yield_strength", "elastic_modulus",
	"thermal_expansion", "thermal_conductivity", "electrical_resistivity",
	"corrosion_resistance", "machinability", "weldability", "common_uses",
}

// ExportCSV writes the full catalog as CSV. Optional properties are emitted
// as empty cells so a round trip preserves their absence.
func (r *Repository) ExportCSV(ctx context.Context, w io.Writer) error {
	materials, err := r.All(ctx)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, material := range materials {
		record := []string{
			material.Name,
			material.Category,
			formatFloat(material.Density),
			formatFloat(material.CostPerKg),
			formatFloatPtr(material.TensileStrength),
			formatFloatPtr(material.YieldStrength),
			formatFloatPtr(material.ElasticModulus),
			formatFloatPtr(material.ThermalExpansion),
			formatFloatPtr(material.ThermalConductivity),
			formatFloatPtr(material.ElectricalResistivity),
			material.CorrosionResistance,
			formatIntPtr(material.Machinability),
			formatIntPtr(material.Weldability),
			material.CommonUses,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv record %q: %w", material.Name, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ImportCSV upserts catalog entries from CSV, matching existing records by
// exact name. It returns the number of rows imported.
func (r *Repository) ImportCSV(ctx context.Context, reader io.Reader) (int, error) {
	records, err := readCSV(reader)
	if err != nil {
		return 0, err
	}

	imported := 0
	for idx, record := range records {
		material, err := buildMaterial(record)
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", idx+2, err)
		}

		var existing models.Material
		err = r.db.WithContext(ctx).Where("name = ?", material.Name).First(&existing).Error
		switch {
		case err == nil:
			if err := r.Update(ctx, existing.ID, material); err != nil {
				return imported, fmt.Errorf("row %d (%s): %w", idx+2, material.Name, err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := r.Create(ctx, material); err != nil {
				return imported, fmt.Errorf("row %d (%s): %w", idx+2, material.Name, err)
			}
		default:
			return imported, fmt.Errorf("row %d (%s): %w", idx+2, material.Name, err)
		}
		imported++
	}

	return imported, nil
}

func readCSV(reader io.Reader) ([]map[string]string, error) {
	r := csv.NewReader(reader)
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	if len(rows) == 0 {
		return nil, errors.New("csv is empty")
	}

	header := rows[0]
	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		record := make(map[string]string, len(header))
		for idx, key := range header {
			if idx >= len(row) {
				continue
			}
			record[strings.TrimSpace(strings.ToLower(key))] = strings.TrimSpace(row[idx])
		}
		records = append(records, record)
	}

	return records, nil
}

func buildMaterial(record map[string]string) (*models.Material, error) {
	density, err := parseFloatCell(record["density"])
	if err != nil {
		return nil, fmt.Errorf("density: %w", err)
	}
	costPerKg, err := parseFloatCell(record["cost_per_kg"])
	if err != nil {
		return nil, fmt.Errorf("cost_per_kg: %w", err)
	}

	material := &models.Material{
		Name:                  record["name"],
		Category:              record["category"],
		Density:               valueOrZero(density),
		CostPerKg:             valueOrZero(costPerKg),
		TensileStrength:       optionalFloatCell(record["tensile_strength"]),
		YieldStrength:         optionalFloatCell(record["yield_strength"]),
		ElasticModulus:        optionalFloatCell(record["elastic_modulus"]),
		ThermalExpansion:      optionalFloatCell(record["thermal_expansion"]),
		ThermalConductivity:   optionalFloatCell(record["thermal_conductivity"]),
		ElectricalResistivity: optionalFloatCell(record["electrical_resistivity"]),
		CorrosionResistance:   record["corrosion_resistance"],
		Machinability:         optionalIntCell(record["machinability"]),
		Weldability:           optionalIntCell(record["weldability"]),
		CommonUses:            record["common_uses"],
	}

	return material, nil
}

func parseFloatCell(value string) (*float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", value, err)
	}
	return &parsed, nil
}

// optionalFloatCell tolerates malformed optional cells by treating them as absent.
func optionalFloatCell(value string) *float64 {
	parsed, err := parseFloatCell(value)
	if err != nil {
		return nil
	}
	return parsed
}

func optionalIntCell(value string) *int {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		// Some datasheets export ratings as floats.
		f, ferr := strconv.ParseFloat(value, 64)
		if ferr != nil {
			return nil
		}
		parsed = int(f)
	}
	return &parsed
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatFloatPtr(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

func formatIntPtr(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
