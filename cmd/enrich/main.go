package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"ycfounders/internal/config"
	"ycfounders/internal/enrich"
	"ycfounders/internal/override"
	"ycfounders/internal/table"
)

// Batch update: read the company CSV, merge researched founder entries over
// pattern rows, rewrite the file in place, print a summary.
func main() {
	cfgPath := flag.String("config", filepath.Join("config", "config.yml"), "path to the shipped default config")
	flag.Parse()

	cfg, err := config.Startup(*cfgPath)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}

	ovr := override.Table{}
	if cfg.Overrides.Path != "" {
		ovr, err = override.Load(cfg.Overrides.Path)
		if errors.Is(err, os.ErrNotExist) {
			// An overrides file that hasn't been started yet just means
			// nothing to merge this run.
			log.Printf("[enrich] no overrides file at %s", cfg.Overrides.Path)
			ovr = override.Table{}
		} else if err != nil {
			log.Fatalf("overrides load failed (%s): %v", cfg.Overrides.Path, err)
		}
	}

	res := override.Validate(ovr)
	for _, w := range res.Warnings {
		log.Printf("[overrides] warning: %s", w)
	}
	if !res.OK() {
		log.Fatalf("overrides invalid: %s", strings.Join(res.Errors, "; "))
	}

	tbl, err := table.Load(cfg.CSV.Path)
	if err != nil {
		log.Fatalf("csv load failed: %v", err)
	}

	sum := enrich.Run(tbl, ovr, cfg.Defaults)

	if err := tbl.Save(cfg.CSV.Path); err != nil {
		log.Fatalf("csv write failed (%s): %v", cfg.CSV.Path, err)
	}

	fmt.Printf("total companies: %d\n", sum.Total)
	fmt.Printf("updated this run: %d\n", sum.Updated)
	fmt.Printf("real data: %d\n", sum.Real)
	fmt.Printf("pattern data: %d\n", sum.Pattern)
	fmt.Printf("updated file: %s\n", cfg.CSV.Path)
}
