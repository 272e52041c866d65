package analyzer

import (
	"context"

	"github.com/haukened/urlvet/internal/vet/domain"
)

// List provides membership lookup over one flat list file.
type List interface {
	// Contains reports whether the normalized URL or its domain is listed.
	Contains(normalizedURL, domain string) bool
}

// RecordingList is a List the pipeline can also append flagged domains to.
// Used for the dynamic blacklist.
type RecordingList interface {
	List

	// RecordDomain appends the domain of the given URL if not already listed.
	RecordDomain(url string) error
}

// DomainResolver answers whether a domain exists in DNS.
type DomainResolver interface {
	Resolve(ctx context.Context, host string) domain.TriState
}

// RegistrationChecker answers whether a domain is registered per WHOIS.
type RegistrationChecker interface {
	Check(ctx context.Context, host string) domain.TriState
}
