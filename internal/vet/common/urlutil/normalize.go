package urlutil

import (
	"net/url"
	"regexp"
	"strings"
)

// schemeRE matches an explicit URL scheme prefix (e.g. "https://").
var schemeRE = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+\-.]*://`)

// Normalize returns a canonical form of a raw URL string:
//   - surrounding whitespace trimmed
//   - default scheme (http) prepended when missing
//   - scheme and host lowercased
//   - userinfo dropped, fragment dropped
//   - trailing slashes removed from the path
//   - query preserved verbatim
//
// Normalize is idempotent: applying it to its own output is a no-op.
// Empty input yields empty output. Input that cannot be parsed is returned
// with only the scheme prefix applied; validity is IsValid's concern.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if !schemeRE.MatchString(s) {
		s = "http://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return s
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme == "" {
		scheme = "http"
	}
	// url.Parse already splits userinfo off into u.User, so u.Host is
	// everything after the last "@".
	host := strings.ToLower(u.Host)
	path := strings.TrimRight(u.EscapedPath(), "/")

	var b strings.Builder
	b.WriteString(scheme)
	b.WriteString("://")
	b.WriteString(host)
	b.WriteString(path)
	if u.RawQuery != "" {
		b.WriteByte('?')
		b.WriteString(u.RawQuery)
	}
	return b.String()
}

// HasScheme reports whether s carries an explicit "scheme://" prefix.
func HasScheme(s string) bool {
	return schemeRE.MatchString(s)
}

// DomainOf extracts the lowercase hostname from a URL after normalization.
// The port is stripped. Returns "" when no hostname can be parsed; it never
// returns an error.
func DomainOf(raw string) string {
	u, err := url.Parse(Normalize(raw))
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
