// Package whois probes registry WHOIS servers over port 43 to decide whether
// a domain is registered. Different registries answer in different formats,
// so responses are classified by marker phrases with a structured parse as a
// last resort, and servers are tried in order until one answers conclusively.
package whois

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	lwhois "github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"

	logpkg "github.com/haukened/urlvet/internal/vet/common/log"
	"github.com/haukened/urlvet/internal/vet/common/urlutil"
	"github.com/haukened/urlvet/internal/vet/domain"
	"github.com/haukened/urlvet/internal/vet/services/analyzer"
)

const defaultTimeout = 6 * time.Second

// tldServers maps common TLDs to a registry server known to answer for them.
// The TLD-specific server is probed first; generic fallbacks follow.
var tldServers = map[string]string{
	"com":  "whois.verisign-grs.com",
	"net":  "whois.verisign-grs.com",
	"org":  "whois.pir.org",
	"info": "whois.afilias.net",
	"io":   "whois.nic.io",
	"co":   "whois.nic.co",
	"in":   "whois.registry.in",
	"me":   "whois.nic.me",
	"biz":  "whois.biz",
	"us":   "whois.nic.us",
	"uk":   "whois.nic.uk",
}

// defaultFallbacks are probed, in order, after any TLD-specific server.
var defaultFallbacks = []string{
	"whois.iana.org",
	"whois.crsnic.net",
	"whois.verisign-grs.com",
}

// notFoundMarkers conclusively indicate an unregistered (available) domain.
var notFoundMarkers = []string{
	"no match for",
	"not found",
	"no data found",
	"no entries found",
	"status: available",
	"domain not found",
	"no such domain",
	"available",
}

// registeredMarkers conclusively indicate a registered domain.
var registeredMarkers = []string{
	"domain name:",
	"registrar:",
	"creation date",
	"registered on",
	"registry expiry date",
	"expiry date",
	"updated date",
	"registration date",
}

// QueryFunc issues one WHOIS query against one server and returns the raw
// response text. Injectable for testing.
type QueryFunc func(ctx context.Context, server, domain string) (string, error)

// Checker decides domain registration status via ordered WHOIS probes.
type Checker struct {
	timeout   time.Duration
	fallbacks []string
	query     QueryFunc
	logger    logpkg.Logger
}

// Options defines configuration parameters for the registration checker.
type Options struct {
	// Timeout bounds each individual server query. Worst-case latency for one
	// check is Timeout times the number of servers probed.
	Timeout time.Duration
	// Fallbacks overrides the generic fallback server list.
	Fallbacks []string
	// options to inject for testing purposes
	Query  QueryFunc
	Logger logpkg.Logger
}

// New creates a Checker. The default QueryFunc performs real WHOIS queries.
func New(opts Options) *Checker {
	c := &Checker{
		timeout:   opts.Timeout,
		fallbacks: opts.Fallbacks,
		query:     opts.Query,
		logger:    opts.Logger,
	}
	if c.timeout <= 0 {
		c.timeout = defaultTimeout
	}
	if len(c.fallbacks) == 0 {
		c.fallbacks = defaultFallbacks
	}
	if c.query == nil {
		c.query = c.whoisQuery
	}
	if c.logger == nil {
		c.logger = logpkg.NewNoopLogger()
	}
	return c
}

// whoisQuery is the production QueryFunc, backed by the likexian whois client.
func (c *Checker) whoisQuery(_ context.Context, server, dom string) (string, error) {
	client := lwhois.NewClient()
	client.SetTimeout(c.timeout)
	return client.Whois(dom, server)
}

// Check reports whether the domain of a checked URL is registered.
//
//   - empty domain: TriUnknown
//   - IP address literal: TriYes (inherently "registered")
//   - otherwise the registrable domain (eTLD+1) is queried against the
//     TLD-specific server, then each fallback, until one gives a conclusive
//     answer; exhaustion yields TriUnknown
//
// Connection failures and ambiguous replies move on to the next server; they
// never produce a hard failure.
func (c *Checker) Check(ctx context.Context, host string) domain.TriState {
	if host == "" {
		return domain.TriUnknown
	}
	if isIPLiteral(host) {
		return domain.TriYes
	}

	probe := urlutil.RegistrableDomain(host)
	if probe == "" {
		probe = host
	}

	for _, server := range c.servers(probe) {
		if ctx.Err() != nil {
			return domain.TriUnknown
		}

		text, err := c.query(ctx, server, probe)
		if err != nil {
			c.logger.Debug(map[string]any{"server": server, "domain": probe, "error": err.Error()}, "whois_query_failed")
			continue
		}

		state := classify(text)
		c.logger.Debug(map[string]any{"server": server, "domain": probe, "state": state.String()}, "whois_response")
		if state != domain.TriUnknown {
			return state
		}
	}
	return domain.TriUnknown
}

// servers builds the ordered probe list for a domain: the TLD-specific
// server first when one is known, then the generic fallbacks.
func (c *Checker) servers(dom string) []string {
	out := make([]string, 0, 1+len(c.fallbacks))
	if i := strings.LastIndexByte(dom, '.'); i >= 0 {
		tld := strings.ToLower(dom[i+1:])
		if server, ok := tldServers[tld]; ok {
			out = append(out, server)
		}
	}
	return append(out, c.fallbacks...)
}

// classify maps one WHOIS response onto the tri-state. Marker phrases are
// checked first; when neither list matches, a structured parse gets a third
// look before the response is declared ambiguous.
func classify(text string) domain.TriState {
	lower := strings.ToLower(text)

	for _, m := range notFoundMarkers {
		if strings.Contains(lower, m) {
			return domain.TriNo
		}
	}
	for _, m := range registeredMarkers {
		if strings.Contains(lower, m) {
			return domain.TriYes
		}
	}

	if _, err := whoisparser.Parse(text); err == nil {
		return domain.TriYes
	} else if errors.Is(err, whoisparser.ErrNotFoundDomain) {
		return domain.TriNo
	}
	return domain.TriUnknown
}

// isIPLiteral reports whether the host is a v4 or v6 address literal.
func isIPLiteral(host string) bool {
	return net.ParseIP(host) != nil
}

var _ analyzer.RegistrationChecker = (*Checker)(nil)
