package main

import (
	"fmt"
	"os"
	"strings"

	"server-faker/internal/export"
	"server-faker/internal/inventory"
	"server-faker/pkg/config"
	"server-faker/pkg/schema"
)

func main() {
	cfg, err := config.ParseFlags("generate")
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
	for _, sc := range cfg.Schemas {
		path := cfg.OutputFor(sc)
		count := cfg.CountFor(sc)
		if err := run(sc, count, path, cfg.Seed); err != nil {
			fmt.Fprintf(os.Stderr, "❌ export failed: %v\n", err)
			os.Exit(1)
		}
		if !cfg.Quiet {
			fmt.Printf("✨ Wrote %d server records to %s (schema %s)\n", count, path, sc.Name)
		}
	}
}

func run(sc *schema.Schema, count int, path string, seed int64) error {
	gen := inventory.New(sc, seed)
	records := gen.Generate(count)
	rows := inventory.Rows(records, sc)

	switch {
	case strings.HasSuffix(path, ".csv.lz4"):
		return export.WriteCSVLZ4(path, sc.Columns, rows)
	case strings.HasSuffix(path, ".csv"):
		return export.WriteCSV(path, sc.Columns, rows)
	case strings.HasSuffix(path, ".xlsx"):
		return export.WriteXLSX(path, sc.Columns, rows)
	default:
		return fmt.Errorf("unsupported output format %q (use .xlsx, .csv, or .csv.lz4)", path)
	}
}
