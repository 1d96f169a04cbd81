package domain

import "strings"

// IsPlaceholder reports whether a row's founder fields look pattern-generated
// rather than researched. Any one indicator is enough:
//   - first name is the filler "Team" or missing entirely
//   - email uses a generic hello@ local part
//   - no LinkedIn profile
func IsPlaceholder(r Record) bool {
	first := r.Get(ColFirstName)
	if first == "Team" || first == "" {
		return true
	}
	if strings.HasPrefix(r.Get(ColEmail), "hello@") {
		return true
	}
	if r.Get(ColLinkedIn) == "" {
		return true
	}
	return false
}
