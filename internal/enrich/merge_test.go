package enrich_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ycfounders/internal/config"
	"ycfounders/internal/domain"
	"ycfounders/internal/enrich"
	"ycfounders/internal/override"
)

func testDefaults() config.Defaults {
	return config.Defaults{
		JobOpenings:  "Software Engineering Intern, Product Intern",
		FundingStage: "Seed",
		AmountRaised: "$1.5M",
		DateRaised:   "Summer 2025",
	}
}

func patternRecord() domain.Record {
	return domain.Record{
		domain.ColCompanyName: "Freya",
		domain.ColFirstName:   "Team",
		domain.ColLastName:    "Freya",
		domain.ColEmail:       "hello@freya.com",
		domain.ColLinkedIn:    "",
		domain.ColWebsite:     "freya.com",
		domain.ColYCLink:      "https://www.ycombinator.com/companies/freya",
		domain.ColDataQuality: "PATTERN",
		"batch":               "S25",
	}
}

func freyaOverride() override.Founder {
	return override.Founder{
		FirstName: "Tunga",
		LastName:  "Bayrak",
		Email:     "tunga@freyavoice.ai",
		LinkedIn:  "linkedin.com/in/tunga-bayrak",
		Website:   "freyavoice.ai",
	}
}

func TestApplyReplacesFounderFields(t *testing.T) {
	got := enrich.Apply(patternRecord(), freyaOverride(), testDefaults())

	assert.Equal(t, "Tunga", got[domain.ColFirstName])
	assert.Equal(t, "Bayrak", got[domain.ColLastName])
	assert.Equal(t, "tunga@freyavoice.ai", got[domain.ColEmail])
	assert.Equal(t, "linkedin.com/in/tunga-bayrak", got[domain.ColLinkedIn])
	assert.Equal(t, "freyavoice.ai", got[domain.ColWebsite])
	assert.Equal(t, enrich.VerifiedMarker, got[domain.ColDataQuality])
	assert.False(t, domain.IsPlaceholder(got))
}

func TestApplyFillsEmptyAuxiliaryFields(t *testing.T) {
	got := enrich.Apply(patternRecord(), freyaOverride(), testDefaults())

	assert.Equal(t, "Software Engineering Intern, Product Intern", got[domain.ColJobOpenings])
	assert.Equal(t, "Seed", got[domain.ColFundingStage])
	assert.Equal(t, "$1.5M", got[domain.ColAmountRaised])
	assert.Equal(t, "Summer 2025", got[domain.ColDateRaised])
}

func TestApplyKeepsExistingAuxiliaryFields(t *testing.T) {
	r := patternRecord()
	r[domain.ColJobOpenings] = "Engineering Intern"
	r[domain.ColFundingStage] = "Series A"
	r[domain.ColAmountRaised] = "$12M"
	r[domain.ColDateRaised] = "Winter 2024"

	got := enrich.Apply(r, freyaOverride(), testDefaults())

	assert.Equal(t, "Engineering Intern", got[domain.ColJobOpenings])
	assert.Equal(t, "Series A", got[domain.ColFundingStage])
	assert.Equal(t, "$12M", got[domain.ColAmountRaised])
	assert.Equal(t, "Winter 2024", got[domain.ColDateRaised])
}

func TestApplyPassesUnknownColumnsThrough(t *testing.T) {
	got := enrich.Apply(patternRecord(), freyaOverride(), testDefaults())

	assert.Equal(t, "S25", got["batch"])
	assert.Equal(t, "https://www.ycombinator.com/companies/freya", got[domain.ColYCLink])
	assert.Equal(t, "Freya", got[domain.ColCompanyName])
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	r := patternRecord()
	want := r.Clone()

	_ = enrich.Apply(r, freyaOverride(), testDefaults())

	require.Equal(t, want, r)
}

func TestApplyIsIdempotent(t *testing.T) {
	f := freyaOverride()
	d := testDefaults()

	once := enrich.Apply(patternRecord(), f, d)
	twice := enrich.Apply(once, f, d)

	require.Equal(t, once, twice)
}
