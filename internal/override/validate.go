package override

import (
	"fmt"
	"sort"
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

// Validate checks every entry of a hand-maintained overrides file. Names are
// walked in sorted order so messages stay stable across runs.
func Validate(t Table) Validation {
	var res Validation

	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		f := t[name]
		if strings.TrimSpace(name) == "" {
			res.addErr("entry with empty company name")
			continue
		}
		if strings.TrimSpace(f.FirstName) == "" {
			res.addErr("%s: first_name is required", name)
		}
		if strings.TrimSpace(f.Email) == "" {
			res.addErr("%s: email is required", name)
		}
		if strings.TrimSpace(f.LinkedIn) == "" {
			res.addWarn("%s: linkedin is empty; the merged row will still classify as pattern data", name)
		}
		if strings.TrimSpace(f.Website) == "" {
			res.addWarn("%s: website is empty", name)
		}
	}
	return res
}
