package urlutil

import (
	"net"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

// validSchemes are the only schemes the verdict pipeline analyzes.
var validSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ftp":   true,
}

// hostRE is the permitted hostname character class.
var hostRE = regexp.MustCompile(`^[A-Za-z0-9.-]+$`)

// IsValid reports whether a raw URL is structurally well-formed enough to
// analyze. The URL is normalized first, so "example.com/path" validates the
// same as "http://example.com/path".
//
// Rules:
//   - scheme must be http, https, or ftp
//   - a hostname must be present
//   - IP address literals (v4 or v6) are accepted unconditionally
//   - otherwise the host needs at least one dot, a final label of two or more
//     characters (unless the host is punycode, "xn--"), and only [A-Za-z0-9.-]
//
// Unicode hostnames are checked via their punycode form. Any parse failure is
// treated as invalid; IsValid never returns an error.
func IsValid(raw string) bool {
	n := Normalize(raw)
	if n == "" {
		return false
	}
	u, err := url.Parse(n)
	if err != nil {
		return false
	}

	if !validSchemes[strings.ToLower(u.Scheme)] {
		return false
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return false
	}

	// IP literals bypass the hostname label rules.
	if net.ParseIP(host) != nil {
		return true
	}

	// IDN hosts validate via their punycode form; if conversion fails the
	// original host falls through to the ASCII checks below.
	if ascii, err := idna.Lookup.ToASCII(host); err == nil {
		host = ascii
	}

	if !strings.Contains(host, ".") {
		return false
	}
	labels := strings.Split(host, ".")
	if len(labels[len(labels)-1]) < 2 && !strings.HasPrefix(host, "xn--") {
		return false
	}
	return hostRE.MatchString(host)
}
