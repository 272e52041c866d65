package domain

import "fmt"

// Verdict represents the categorical outcome of analyzing one URL.
type Verdict uint8

const (
	// VerdictSafe indicates the URL passed all checks or is whitelisted.
	VerdictSafe Verdict = iota
	// VerdictInvalid indicates the URL is structurally malformed.
	VerdictInvalid
	// VerdictBlacklisted indicates the URL matched the curated blacklist.
	VerdictBlacklisted
	// VerdictDynamic indicates the URL matched the dynamic blacklist.
	VerdictDynamic
	// VerdictSuspicious indicates a heuristic rule matched.
	VerdictSuspicious
	// VerdictNonexistent indicates the domain does not resolve.
	VerdictNonexistent
	// VerdictUnknown indicates DNS resolution could not be verified.
	VerdictUnknown
	// VerdictUnregistered indicates WHOIS reports the domain as available.
	VerdictUnregistered
	// VerdictUnknownRegistration indicates the WHOIS probe was inconclusive.
	VerdictUnknownRegistration
)

// IsValid returns true if the Verdict is within the supported range.
func (v Verdict) IsValid() bool {
	return v <= VerdictUnknownRegistration
}

// String returns the textual representation of the Verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictSafe:
		return "safe"
	case VerdictInvalid:
		return "invalid"
	case VerdictBlacklisted:
		return "blacklisted"
	case VerdictDynamic:
		return "dynamic"
	case VerdictSuspicious:
		return "suspicious"
	case VerdictNonexistent:
		return "nonexistent"
	case VerdictUnknown:
		return "unknown"
	case VerdictUnregistered:
		return "unregistered"
	case VerdictUnknownRegistration:
		return "unknown_registration"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", v)
	}
}

// ParseVerdict converts a string name to a Verdict value.
// Unrecognized names map to VerdictUnknown.
func ParseVerdict(s string) Verdict {
	switch s {
	case "safe":
		return VerdictSafe
	case "invalid":
		return VerdictInvalid
	case "blacklisted":
		return VerdictBlacklisted
	case "dynamic":
		return VerdictDynamic
	case "suspicious":
		return VerdictSuspicious
	case "nonexistent":
		return VerdictNonexistent
	case "unknown":
		return VerdictUnknown
	case "unregistered":
		return VerdictUnregistered
	case "unknown_registration":
		return VerdictUnknownRegistration
	default:
		return VerdictUnknown
	}
}
