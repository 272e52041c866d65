package urlutil

import (
	"strings"

	"golang.org/x/net/publicsuffix"
)

// RegistrableDomain returns the eTLD+1 for a hostname, so WHOIS probes ask
// about "example.com" rather than "www.example.com".
func RegistrableDomain(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	// remove all trailing dots
	for strings.HasSuffix(host, ".") {
		host = strings.TrimSuffix(host, ".")
	}
	apex, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host // fall back to the input if parsing fails
	}
	return apex
}
