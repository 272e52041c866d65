// Package dnscheck answers "does this domain resolve?" as a tri-state,
// keeping transient resolver failures distinct from NXDOMAIN.
package dnscheck

import (
	"context"
	"errors"
	"net"

	lru "github.com/hashicorp/golang-lru/v2"

	logpkg "github.com/haukened/urlvet/internal/vet/common/log"
	"github.com/haukened/urlvet/internal/vet/domain"
	"github.com/haukened/urlvet/internal/vet/services/analyzer"
)

// LookupFunc performs address resolution for a host. It matches the signature
// of net.Resolver.LookupHost and can be swapped out for testing.
type LookupFunc func(ctx context.Context, host string) ([]string, error)

// Resolver checks DNS existence for domains. Conclusive answers are memoized
// in a bounded LRU for the life of the process so repeated checks of the same
// domain skip the network; indeterminate answers are never memoized.
type Resolver struct {
	lookup LookupFunc
	cache  *lru.Cache[string, domain.TriState]
	logger logpkg.Logger
}

// Options defines configuration parameters for the DNS existence resolver.
type Options struct {
	// CacheSize bounds the memo of conclusive answers. Zero disables it.
	CacheSize int
	// options to inject for testing purposes
	Lookup LookupFunc
	Logger logpkg.Logger
}

// New creates a Resolver. The system resolver is used when no LookupFunc is
// provided.
func New(opts Options) (*Resolver, error) {
	if opts.Lookup == nil {
		opts.Lookup = net.DefaultResolver.LookupHost
	}
	if opts.Logger == nil {
		opts.Logger = logpkg.NewNoopLogger()
	}
	var cache *lru.Cache[string, domain.TriState]
	if opts.CacheSize > 0 {
		c, err := lru.New[string, domain.TriState](opts.CacheSize)
		if err != nil {
			return nil, err
		}
		cache = c
	}
	return &Resolver{
		lookup: opts.Lookup,
		cache:  cache,
		logger: opts.Logger,
	}, nil
}

// Resolve reports whether the given domain exists in DNS.
//
//   - empty domain: TriNo
//   - IP address literal: TriYes, no lookup performed
//   - successful resolution: TriYes
//   - NXDOMAIN-class failure: TriNo
//   - temporary failure, timeout, or anything else: TriUnknown
//
// The call may block on network I/O up to whatever bound the underlying
// resolver imposes; run it off any latency-sensitive path.
func (r *Resolver) Resolve(ctx context.Context, host string) domain.TriState {
	if host == "" {
		return domain.TriNo
	}
	if net.ParseIP(host) != nil {
		return domain.TriYes
	}

	if r.cache != nil {
		if state, ok := r.cache.Get(host); ok {
			r.logger.Debug(map[string]any{"domain": host, "state": state.String()}, "dns_memo_hit")
			return state
		}
	}

	state := r.classify(ctx, host)
	if r.cache != nil && state != domain.TriUnknown {
		r.cache.Add(host, state)
	}
	r.logger.Debug(map[string]any{"domain": host, "state": state.String()}, "dns_resolved")
	return state
}

// classify performs the lookup and maps its outcome onto the tri-state.
// Failures that cannot be attributed to NXDOMAIN resolve toward "can't tell"
// rather than "doesn't exist".
func (r *Resolver) classify(ctx context.Context, host string) domain.TriState {
	_, err := r.lookup(ctx, host)
	if err == nil {
		return domain.TriYes
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		if dnsErr.IsNotFound {
			return domain.TriNo
		}
		if dnsErr.IsTemporary || dnsErr.IsTimeout {
			return domain.TriUnknown
		}
	}
	return domain.TriUnknown
}

var _ analyzer.DomainResolver = (*Resolver)(nil)
