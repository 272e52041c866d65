package domain

import "fmt"

// Result is the outcome of analyzing a single URL.
// Pure value type, constructed fresh per analysis and immutable once returned.
type Result struct {
	URL        string     // normalized form of the analyzed URL
	Verdict    Verdict    // categorical outcome
	Risk       uint8      // severity estimate, 0-100
	Notes      string     // human-readable reason; presentation only
	SuggestAdd Suggestion // recommended list addition, if any
}

// NewResult constructs a Result and validates its fields.
func NewResult(url string, verdict Verdict, risk uint8, notes string, suggest Suggestion) (Result, error) {
	r := Result{
		URL:        url,
		Verdict:    verdict,
		Risk:       risk,
		Notes:      notes,
		SuggestAdd: suggest,
	}
	if err := r.Validate(); err != nil {
		return Result{}, err
	}
	return r, nil
}

// Validate checks the Result for supported values.
func (r Result) Validate() error {
	if !r.Verdict.IsValid() {
		return fmt.Errorf("unsupported Verdict: %d", r.Verdict)
	}
	if r.Risk > 100 {
		return fmt.Errorf("risk out of range: %d", r.Risk)
	}
	switch r.SuggestAdd {
	case SuggestNone, SuggestWhitelist, SuggestBlacklist:
		// ok
	default:
		return fmt.Errorf("unsupported Suggestion: %d", r.SuggestAdd)
	}
	return nil
}

// IsConclusive reports whether the verdict carries a definite safety signal,
// as opposed to the two "could not tell" outcomes.
func (r Result) IsConclusive() bool {
	return r.Verdict != VerdictUnknown && r.Verdict != VerdictUnknownRegistration
}
