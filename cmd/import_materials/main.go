// Command import_materials loads or refreshes the material catalog from a
// CSV export, matching existing records by name.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"materio/internal/catalog"
	"materio/internal/config"
	"materio/internal/db"
)

func main() {
	csvPath := "materials.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}

	if err := run(csvPath); err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		os.Exit(1)
	}
}

func run(csvPath string) error {
	if strings.TrimSpace(csvPath) == "" {
		return fmt.Errorf("csv path must not be empty")
	}

	if _, err := os.Stat(csvPath); err != nil {
		return fmt.Errorf("locate csv: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	database, err := db.Initialize(cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(database); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	file, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	repository := catalog.NewRepository(database)
	imported, err := repository.ImportCSV(context.Background(), file)
	if err != nil {
		return fmt.Errorf("import csv: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Imported %d materials from %s\n", imported, filepath.Base(csvPath))
	return nil
}
