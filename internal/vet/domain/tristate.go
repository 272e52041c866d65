package domain

import "fmt"

// TriState is a three-valued answer for network-backed checks (DNS existence,
// WHOIS registration). "Unknown" is a first-class outcome so that network
// flakiness is never collapsed into a negative signal.
type TriState uint8

const (
	// TriUnknown means the check could not be completed conclusively.
	TriUnknown TriState = iota
	// TriYes is the affirmative answer.
	TriYes
	// TriNo is the negative answer.
	TriNo
)

// String returns a stable string representation of the TriState.
func (t TriState) String() string {
	switch t {
	case TriUnknown:
		return "unknown"
	case TriYes:
		return "yes"
	case TriNo:
		return "no"
	default:
		return fmt.Sprintf("TriState(%d)", t)
	}
}

// ParseTriState converts a string into a TriState.
// Accepts: "yes", "no", "unknown"; anything else is TriUnknown.
func ParseTriState(s string) TriState {
	switch s {
	case "yes":
		return TriYes
	case "no":
		return TriNo
	default:
		return TriUnknown
	}
}
