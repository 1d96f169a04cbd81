package domain

import "regexp"

var slugRe = regexp.MustCompile(`/companies/([^/]+)`)

// Slug pulls the company identifier out of a YC profile link, e.g.
// "https://www.ycombinator.com/companies/acme-inc" -> "acme-inc". The segment
// is returned verbatim; there is nothing to gain from normalizing it since it
// only serves as a lookup key for the manual research pass.
func Slug(link string) (string, bool) {
	if link == "" {
		return "", false
	}
	m := slugRe.FindStringSubmatch(link)
	if m == nil {
		return "", false
	}
	return m[1], true
}
