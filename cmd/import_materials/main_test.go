package main

import (
	"strings"
	"testing"
)

func TestRunRejectsBlankPath(t *testing.T) {
	if err := run("   "); err == nil {
		t.Fatal("expected an error for a blank csv path")
	}
}

func TestRunReportsMissingFile(t *testing.T) {
	err := run("definitely-not-here.csv")
	if err == nil {
		t.Fatal("expected an error for a missing csv file")
	}
	if !strings.Contains(err.Error(), "locate csv") {
		t.Fatalf("expected a locate error, got %v", err)
	}
}
