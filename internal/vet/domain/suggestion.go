package domain

import "fmt"

// Suggestion identifies the list, if any, a verdict recommends adding the
// checked URL to. The pipeline only suggests; the caller decides whether to
// confirm the addition.
type Suggestion uint8

const (
	// SuggestNone recommends no list action.
	SuggestNone Suggestion = iota
	// SuggestWhitelist recommends adding the entry to the whitelist.
	SuggestWhitelist
	// SuggestBlacklist recommends adding the entry to the blacklist.
	SuggestBlacklist
)

// String returns a stable string representation of the Suggestion.
func (s Suggestion) String() string {
	switch s {
	case SuggestNone:
		return "none"
	case SuggestWhitelist:
		return "whitelist"
	case SuggestBlacklist:
		return "blacklist"
	default:
		return fmt.Sprintf("Suggestion(%d)", s)
	}
}

// ParseSuggestion converts a string into a Suggestion.
// Accepts: "whitelist", "blacklist"; anything else is SuggestNone.
func ParseSuggestion(s string) Suggestion {
	switch s {
	case "whitelist":
		return SuggestWhitelist
	case "blacklist":
		return SuggestBlacklist
	default:
		return SuggestNone
	}
}
