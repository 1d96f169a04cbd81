package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string
	Warnings []string
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// Stock defaults from the summer-25 batch, used when the config leaves a
// defaults field empty.
const (
	stockJobOpenings  = "Software Engineering Intern, Product Intern"
	stockFundingStage = "Seed"
	stockAmountRaised = "$1.5M"
	stockDateRaised   = "Summer 2025"
)

// NormalizeAndValidate returns a normalized copy: paths trimmed, empty
// defaults filled with the stock strings, plus anything worth flagging.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	out.CSV.Path = strings.TrimSpace(out.CSV.Path)
	out.Overrides.Path = strings.TrimSpace(out.Overrides.Path)
	out.Report.Path = strings.TrimSpace(out.Report.Path)

	if out.Report.Path == "" {
		out.Report.Path = "companies_needing_founders.json"
	}
	if out.Defaults.JobOpenings == "" {
		out.Defaults.JobOpenings = stockJobOpenings
	}
	if out.Defaults.FundingStage == "" {
		out.Defaults.FundingStage = stockFundingStage
	}
	if out.Defaults.AmountRaised == "" {
		out.Defaults.AmountRaised = stockAmountRaised
	}
	if out.Defaults.DateRaised == "" {
		out.Defaults.DateRaised = stockDateRaised
	}

	// ---- Validation rules ----

	if out.CSV.Path == "" {
		res.addErr("csv.path is required")
	}
	if out.Overrides.Path == "" {
		res.addWarn("overrides.path is empty; enrich runs will update nothing")
	}

	return out, res
}
