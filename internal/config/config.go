// internal/config/config.go
package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Defaults fill the auxiliary columns when a merged row has nothing there.
type Defaults struct {
	JobOpenings  string `yaml:"job_openings"`
	FundingStage string `yaml:"funding_stage"`
	AmountRaised string `yaml:"amount_raised"`
	DateRaised   string `yaml:"date_raised"`
}

// Config is the user config. The data dir itself is not in here: it decides
// where this file lives, so it comes from YCFOUNDERS_DATA_DIR alone.
type Config struct {
	CSV struct {
		Path string `yaml:"path"`
	} `yaml:"csv"`

	Overrides struct {
		Path string `yaml:"path"`
	} `yaml:"overrides"`

	Report struct {
		Path string `yaml:"path"`
	} `yaml:"report"`

	Defaults Defaults `yaml:"defaults"`
}

// env holds overrides that win over the YAML file, e.g. YCFOUNDERS_CSV.
type env struct {
	CSV       string `envconfig:"CSV"`
	Overrides string `envconfig:"OVERRIDES"`
	Report    string `envconfig:"REPORT"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}

	var e env
	if err := envconfig.Process("ycfounders", &e); err != nil {
		return cfg, err
	}
	if e.CSV != "" {
		cfg.CSV.Path = e.CSV
	}
	if e.Overrides != "" {
		cfg.Overrides.Path = e.Overrides
	}
	if e.Report != "" {
		cfg.Report.Path = e.Report
	}
	return cfg, nil
}
