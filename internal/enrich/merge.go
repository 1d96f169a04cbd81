package enrich

import (
	"strings"

	"ycfounders/internal/config"
	"ycfounders/internal/domain"
	"ycfounders/internal/override"
)

// VerifiedMarker is written to data_quality once a row carries researched
// founder data. Kept identical to what earlier batch runs already wrote so
// old and new rows compare equal.
const VerifiedMarker = "✅ REAL"

// Apply merges a researched founder entry over a row and returns the result
// as a new record; the input is never modified. Eligibility (pattern row,
// entry exists) is the caller's job — Apply always merges.
func Apply(r domain.Record, f override.Founder, d config.Defaults) domain.Record {
	out := r.Clone()

	out[domain.ColFirstName] = f.FirstName
	out[domain.ColLastName] = f.LastName
	out[domain.ColEmail] = f.Email
	out[domain.ColLinkedIn] = f.LinkedIn
	out[domain.ColWebsite] = f.Website

	out[domain.ColJobOpenings] = keepOr(r[domain.ColJobOpenings], d.JobOpenings)
	out[domain.ColFundingStage] = keepOr(r[domain.ColFundingStage], d.FundingStage)
	out[domain.ColAmountRaised] = keepOr(r[domain.ColAmountRaised], d.AmountRaised)
	out[domain.ColDateRaised] = keepOr(r[domain.ColDateRaised], d.DateRaised)

	out[domain.ColDataQuality] = VerifiedMarker
	return out
}

func keepOr(existing, def string) string {
	if strings.TrimSpace(existing) != "" {
		return existing
	}
	return def
}
