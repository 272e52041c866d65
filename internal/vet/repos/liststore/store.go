// Package liststore implements the flat-file membership lists backing the
// verdict pipeline: whitelist, blacklist, and dynamic blacklist. Each store is
// bound to one text file holding one entry per line, where an entry is either
// a bare lowercase domain or a URL.
//
// The file is re-read on every lookup so each analysis sees the current
// on-disk state; nothing is cached across calls. Entries are append-only.
package liststore

import (
	"bufio"
	"os"
	"strings"

	logpkg "github.com/haukened/urlvet/internal/vet/common/log"
	"github.com/haukened/urlvet/internal/vet/common/urlutil"
)

// Store provides set membership over a single flat list file.
type Store struct {
	path   string
	logger logpkg.Logger
}

// New returns a Store bound to the given file path.
func New(path string, logger logpkg.Logger) *Store {
	if logger == nil {
		logger = logpkg.NewNoopLogger()
	}
	return &Store{path: path, logger: logger}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Entries reads the backing file and returns its contents as a set.
// A missing or unreadable file yields an empty set, never an error.
//
// Lines that look like URLs (explicit scheme or containing "/") are inserted
// twice: once as the normalized URL and once as the extracted domain. This
// keeps membership checks robust to whether the stored entry and the queried
// value are full URLs, bare domains, or mixed. Other lines are inserted
// lowercased as-is. Blank lines and whole-line "#" comments are skipped.
func (s *Store) Entries() map[string]struct{} {
	entries := make(map[string]struct{})

	f, err := os.Open(s.path)
	if err != nil {
		s.logger.Debug(map[string]any{"path": s.path, "error": err.Error()}, "list_open_failed")
		return entries
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		line = strings.TrimPrefix(line, "\uFEFF")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		lower := strings.ToLower(line)
		if urlutil.HasScheme(lower) || strings.Contains(lower, "/") {
			norm := urlutil.Normalize(lower)
			entries[norm] = struct{}{}
			if host := urlutil.DomainOf(norm); host != "" {
				entries[host] = struct{}{}
			}
		} else {
			entries[lower] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		// partial reads degrade to whatever was scanned so far
		s.logger.Debug(map[string]any{"path": s.path, "error": err.Error()}, "list_scan_error")
	}
	return entries
}

// Contains reports whether the given normalized URL or its domain is listed.
func (s *Store) Contains(normalizedURL, domain string) bool {
	entries := s.Entries()
	if domain != "" {
		if _, ok := entries[domain]; ok {
			return true
		}
	}
	_, ok := entries[strings.ToLower(normalizedURL)]
	return ok
}

// Append adds an entry to the backing file if it is not already listed.
// The entry is lowercased and newline-terminated. The current contents are
// re-read immediately before writing to avoid duplicates under sequential
// use; concurrent writers may still race (read-then-write without exclusion).
func (s *Store) Append(entry string) error {
	entry = strings.ToLower(strings.TrimSpace(entry))
	if entry == "" {
		return nil
	}
	if _, ok := s.Entries()[entry]; ok {
		s.logger.Debug(map[string]any{"path": s.path, "entry": entry}, "append_skip_duplicate")
		return nil
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(entry + "\n"); err != nil {
		return err
	}
	s.logger.Debug(map[string]any{"path": s.path, "entry": entry}, "append_entry")
	return nil
}

// RecordDomain appends the domain of a URL, falling back to the lowercased
// URL itself when domain extraction fails. Used to populate the dynamic
// blacklist as a side effect of suspicious verdicts.
func (s *Store) RecordDomain(url string) error {
	entry := urlutil.DomainOf(url)
	if entry == "" {
		entry = strings.ToLower(url)
	}
	return s.Append(entry)
}
