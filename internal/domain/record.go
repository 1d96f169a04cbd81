package domain

import "strings"

// Column names of the enriched summer-25 company CSV. The file may carry more
// columns than these; anything unknown passes through a run untouched.
const (
	ColCompanyName  = "Company_Name"
	ColFirstName    = "founder_first_name"
	ColLastName     = "founder_last_name"
	ColEmail        = "founder_email"
	ColLinkedIn     = "founder_linkedin"
	ColWebsite      = "website"
	ColJobOpenings  = "job_openings"
	ColFundingStage = "funding_stage"
	ColAmountRaised = "amount_raised"
	ColDateRaised   = "date_raised"
	ColDataQuality  = "data_quality"
	ColYCLink       = "YC_Link"
)

// Record is one CSV row. A column that was never set reads as "".
type Record map[string]string

// Get returns the trimmed value of a column.
func (r Record) Get(col string) string {
	return strings.TrimSpace(r[col])
}

func (r Record) CompanyName() string {
	return r.Get(ColCompanyName)
}

// Clone returns a copy that is safe to modify without touching the original.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
