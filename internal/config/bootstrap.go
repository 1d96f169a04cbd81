package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// EnsureUserConfig makes sure <dataDir>/config.yml exists, seeding it from
// the shipped default on first run, and returns its path.
func EnsureUserConfig(dataDir string, defaultPath string) (string, error) {
	userPath := filepath.Join(dataDir, "config.yml")

	_, err := os.Stat(userPath)
	if err == nil {
		return userPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	b, err := os.ReadFile(defaultPath)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(userPath, b, 0o644); err != nil {
		return "", err
	}
	return userPath, nil
}

// Startup is the shared front door for the CLIs: resolve the data dir, seed
// the user config on first run, load it with env overrides applied, then
// normalize and validate. Warnings go to the log; errors fail the run.
func Startup(defaultPath string) (Config, error) {
	dataDir := os.Getenv("YCFOUNDERS_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return Config{}, err
	}

	userPath, err := EnsureUserConfig(dataDir, defaultPath)
	if err != nil {
		return Config{}, fmt.Errorf("config bootstrap: %w", err)
	}

	cfg, err := Load(userPath)
	if err != nil {
		return Config{}, fmt.Errorf("config load (%s): %w", userPath, err)
	}

	cfg, res := NormalizeAndValidate(cfg)
	for _, w := range res.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if !res.OK() {
		return Config{}, fmt.Errorf("config invalid: %s", strings.Join(res.Errors, "; "))
	}
	return cfg, nil
}
