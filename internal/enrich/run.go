package enrich

import (
	"log"

	"ycfounders/internal/config"
	"ycfounders/internal/domain"
	"ycfounders/internal/override"
	"ycfounders/internal/table"
)

// Summary is what a batch pass did to the table. Real counts rows that
// already carried researched data going in; rows merged this pass show up in
// Updated, not Real.
type Summary struct {
	Total   int
	Updated int
	Real    int
	Pattern int // rows still classifying as pattern data after the pass
}

// Run walks the table in row order and replaces pattern rows that have an
// override entry with the merged record. Pure in-memory pass; the caller
// loads and saves the table.
func Run(tbl *table.Table, ovr override.Table, d config.Defaults) Summary {
	s := Summary{Total: len(tbl.Rows)}

	for i, row := range tbl.Rows {
		if !domain.IsPlaceholder(row) {
			s.Real++
			continue
		}
		f, ok := ovr[row.CompanyName()]
		if !ok {
			continue
		}
		tbl.Rows[i] = Apply(row, f, d)
		s.Updated++
		log.Printf("[enrich] updated %q with researched founder data", row.CompanyName())
	}

	for _, row := range tbl.Rows {
		if domain.IsPlaceholder(row) {
			s.Pattern++
		}
	}
	return s
}
