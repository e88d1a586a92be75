package substitution

import (
	"context"
	"testing"

	"materio/models"
)

func compatibilityCatalog() *stubCatalog {
	return &stubCatalog{materials: []models.Material{
		{ID: 1, Name: "AISI 1018 Steel", Category: "Metal - Steel", ThermalExpansion: floatPtr(11.7)},
		{ID: 2, Name: "Cast Iron", Category: "Metal - Iron", ThermalExpansion: floatPtr(10.8)},
		{ID: 3, Name: "Aluminum 6061", Category: "Metal - Aluminum", ThermalExpansion: floatPtr(23.6)},
		{ID: 4, Name: "Copper C110", Category: "Metal - Copper", ThermalExpansion: floatPtr(17.0)},
		{ID: 5, Name: "PTFE", Category: "Plastic", ThermalExpansion: floatPtr(135)},
		{ID: 6, Name: "Nylon 6/6", Category: "Plastic", ThermalExpansion: floatPtr(80)},
	}}
}

func TestCompatibilityGalvanicRisk(t *testing.T) {
	t.Parallel()

	finder := NewFinder(compatibilityCatalog())
	report, err := finder.Compatibility(context.Background(), "Aluminum", "Copper")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Compatible {
		t.Fatal("expected aluminum/copper pairing to be flagged")
	}
	if report.Reason != "Potential galvanic corrosion risk" {
		t.Fatalf("unexpected reason %q", report.Reason)
	}
	if report.GalvanicDifference == nil || *report.GalvanicDifference != 3 {
		t.Fatalf("expected galvanic difference 3, got %+v", report.GalvanicDifference)
	}
}

func TestCompatibilityAdjacentMetals(t *testing.T) {
	t.Parallel()

	finder := NewFinder(compatibilityCatalog())
	report, err := finder.Compatibility(context.Background(), "1018", "Cast Iron")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !report.Compatible {
		t.Fatalf("expected steel/iron pairing to pass, got %+v", report)
	}
	if report.Notes != "Materials appear compatible for most applications" {
		t.Fatalf("unexpected notes %q", report.Notes)
	}
}

func TestCompatibilityThermalMismatch(t *testing.T) {
	t.Parallel()

	finder := NewFinder(compatibilityCatalog())
	report, err := finder.Compatibility(context.Background(), "PTFE", "Nylon")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Compatible {
		t.Fatal("expected thermal mismatch to be flagged")
	}
	if report.Reason != "Large difference in thermal expansion coefficients" {
		t.Fatalf("unexpected reason %q", report.Reason)
	}
	if report.ThermalDifference == nil || *report.ThermalDifference != 55 {
		t.Fatalf("expected thermal difference 55, got %+v", report.ThermalDifference)
	}
}

func TestCompatibilityUnknownMaterial(t *testing.T) {
	t.Parallel()

	finder := NewFinder(compatibilityCatalog())
	report, err := finder.Compatibility(context.Background(), "Steel", "Unobtainium")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Compatible {
		t.Fatal("expected unresolved pairing to be not compatible")
	}
	if report.Reason != "One or both materials not found" {
		t.Fatalf("unexpected reason %q", report.Reason)
	}
}
