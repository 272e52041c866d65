// Package analyzer implements the URL verdict pipeline: a fixed, ordered
// chain of checks where the first conclusive stage terminates the run.
//
// Stage order: validate, whitelist, blacklist, dynamic blacklist, heuristics,
// DNS resolution, WHOIS registration. Recoverable conditions (bad input,
// network uncertainty, missing list files) are absorbed into the verdict
// model itself; "don't know" is a verdict, not an error.
package analyzer

import (
	"context"

	logpkg "github.com/haukened/urlvet/internal/vet/common/log"
	"github.com/haukened/urlvet/internal/vet/common/urlutil"
	"github.com/haukened/urlvet/internal/vet/domain"
)

// Analyzer orchestrates the verdict pipeline over its collaborators.
type Analyzer struct {
	whitelist List
	blacklist List
	dynamic   RecordingList
	resolver  DomainResolver
	registrar RegistrationChecker
	logger    logpkg.Logger
}

// Options defines the collaborators of an Analyzer.
type Options struct {
	Whitelist List
	Blacklist List
	Dynamic   RecordingList
	Resolver  DomainResolver
	Registrar RegistrationChecker
	Logger    logpkg.Logger
}

// New constructs an Analyzer from its collaborators.
func New(opts Options) *Analyzer {
	if opts.Logger == nil {
		opts.Logger = logpkg.NewNoopLogger()
	}
	return &Analyzer{
		whitelist: opts.Whitelist,
		blacklist: opts.Blacklist,
		dynamic:   opts.Dynamic,
		resolver:  opts.Resolver,
		registrar: opts.Registrar,
		logger:    opts.Logger,
	}
}

// Analyze runs the pipeline for one raw URL and returns its Result.
//
// The pipeline always completes with a verdict; the error return carries only
// unexpected internal faults, never input or network conditions. Analyze
// performs blocking network I/O (DNS, sequential WHOIS probes) and must not
// run on a latency-sensitive caller; use Go for background delivery.
func (a *Analyzer) Analyze(ctx context.Context, raw string) (domain.Result, error) {
	url := urlutil.Normalize(raw)

	if !urlutil.IsValid(url) {
		return a.conclude(url, domain.VerdictInvalid, 80, "Invalid URL format.", domain.SuggestNone), nil
	}

	host := urlutil.DomainOf(url)

	if a.whitelist.Contains(url, host) {
		return a.conclude(url, domain.VerdictSafe, 0, "Whitelisted.", domain.SuggestNone), nil
	}
	if a.blacklist.Contains(url, host) {
		return a.conclude(url, domain.VerdictBlacklisted, 100, "Listed in blacklist.", domain.SuggestNone), nil
	}
	if a.dynamic.Contains(url, host) {
		return a.conclude(url, domain.VerdictDynamic, 95, "Listed in dynamic blacklist.", domain.SuggestNone), nil
	}

	if suspicious, reason := IsSuspicious(url); suspicious {
		a.recordDynamic(url)
		notes := "Heuristic rules matched: " + reason + ". Consider blocking."
		return a.conclude(url, domain.VerdictSuspicious, 90, notes, domain.SuggestBlacklist), nil
	}

	switch a.resolver.Resolve(ctx, host) {
	case domain.TriNo:
		a.recordDynamic(url)
		return a.conclude(url, domain.VerdictNonexistent, 85, "Domain does not resolve.", domain.SuggestBlacklist), nil
	case domain.TriUnknown:
		return a.conclude(url, domain.VerdictUnknown, 10, "Could not verify domain (DNS/network issue).", domain.SuggestNone), nil
	}

	switch a.registrar.Check(ctx, host) {
	case domain.TriNo:
		a.recordDynamic(url)
		return a.conclude(url, domain.VerdictUnregistered, 90,
			"WHOIS indicates the domain is not registered (available). Possibly malicious.", domain.SuggestBlacklist), nil
	case domain.TriUnknown:
		return a.conclude(url, domain.VerdictUnknownRegistration, 15,
			"DNS resolves but the WHOIS lookup was inconclusive. Proceed with caution.", domain.SuggestNone), nil
	}

	return a.conclude(url, domain.VerdictSafe, 5,
		"Passed checks; domain resolves and appears registered.", domain.SuggestWhitelist), nil
}

// conclude assembles a terminal Result and logs the outcome.
func (a *Analyzer) conclude(url string, verdict domain.Verdict, risk uint8, notes string, suggest domain.Suggestion) domain.Result {
	a.logger.Info(map[string]any{
		"url":     url,
		"verdict": verdict.String(),
		"risk":    risk,
	}, "analysis complete")
	return domain.Result{
		URL:        url,
		Verdict:    verdict,
		Risk:       risk,
		Notes:      notes,
		SuggestAdd: suggest,
	}
}

// recordDynamic appends the URL's domain to the dynamic blacklist.
// The write is advisory: a failure is logged and never alters the verdict.
func (a *Analyzer) recordDynamic(url string) {
	if err := a.dynamic.RecordDomain(url); err != nil {
		a.logger.Warn(map[string]any{"url": url, "error": err.Error()}, "dynamic blacklist write failed")
	}
}
