package enrich

import (
	"bytes"
	"encoding/json"
	"os"

	"ycfounders/internal/domain"
	"ycfounders/internal/table"
)

// PendingCompany is one row still waiting on manual research: enough to find
// the public profile page by hand.
type PendingCompany struct {
	Company string `json:"company"`
	YCLink  string `json:"yc_link"`
	Slug    string `json:"slug,omitempty"`
}

// Pending lists the rows still classified as pattern data, in row order.
func Pending(tbl *table.Table) []PendingCompany {
	var out []PendingCompany
	for _, row := range tbl.Rows {
		if !domain.IsPlaceholder(row) {
			continue
		}
		p := PendingCompany{
			Company: row.CompanyName(),
			YCLink:  row.Get(domain.ColYCLink),
		}
		if slug, ok := domain.Slug(p.YCLink); ok {
			p.Slug = slug
		}
		out = append(out, p)
	}
	return out
}

// WriteReport drops the pending list as an indented JSON document for the
// manual research pass. HTML escaping is off so links stay readable.
func WriteReport(path string, rows []PendingCompany) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rows); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
