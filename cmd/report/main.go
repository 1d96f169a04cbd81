package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"ycfounders/internal/config"
	"ycfounders/internal/enrich"
	"ycfounders/internal/table"
)

const maxListed = 20

// Report: list the companies still carrying pattern founder data, with the
// YC links (and slugs) to visit by hand, and save the full list as JSON.
// Never writes the CSV.
func main() {
	cfgPath := flag.String("config", filepath.Join("config", "config.yml"), "path to the shipped default config")
	flag.Parse()

	cfg, err := config.Startup(*cfgPath)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}

	tbl, err := table.Load(cfg.CSV.Path)
	if err != nil {
		log.Fatalf("csv load failed: %v", err)
	}

	pending := enrich.Pending(tbl)

	fmt.Printf("total companies: %d\n", len(tbl.Rows))
	fmt.Printf("companies needing founder data: %d\n", len(pending))
	if len(pending) == 0 {
		fmt.Println("all companies already have real founder data")
		return
	}

	fmt.Println("\nYC links to visit:")
	for i, p := range pending {
		if i == maxListed {
			fmt.Printf("... and %d more\n", len(pending)-maxListed)
			break
		}
		line := fmt.Sprintf("%d. %s: %s", i+1, p.Company, p.YCLink)
		if p.Slug != "" {
			line += " (" + p.Slug + ")"
		}
		fmt.Println(line)
	}

	if err := enrich.WriteReport(cfg.Report.Path, pending); err != nil {
		log.Fatalf("report write failed (%s): %v", cfg.Report.Path, err)
	}
	fmt.Printf("\nsaved pending list to %s\n", cfg.Report.Path)
}
