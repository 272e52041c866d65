package domain

import (
	"testing"
)

func TestVerdict_IsValid(t *testing.T) {
	cases := []struct {
		v    Verdict
		want bool
	}{
		{VerdictSafe, true}, {VerdictInvalid, true}, {VerdictBlacklisted, true},
		{VerdictDynamic, true}, {VerdictSuspicious, true}, {VerdictNonexistent, true},
		{VerdictUnknown, true}, {VerdictUnregistered, true}, {VerdictUnknownRegistration, true},
		{9, false}, {10, false}, {255, false},
	}
	for _, tc := range cases {
		if got := tc.v.IsValid(); got != tc.want {
			t.Errorf("IsValid(%d) = %v, want %v", tc.v, got, tc.want)
		}
	}
}

func TestVerdict_String(t *testing.T) {
	cases := []struct {
		v    Verdict
		want string
	}{
		{VerdictSafe, "safe"},
		{VerdictInvalid, "invalid"},
		{VerdictBlacklisted, "blacklisted"},
		{VerdictDynamic, "dynamic"},
		{VerdictSuspicious, "suspicious"},
		{VerdictNonexistent, "nonexistent"},
		{VerdictUnknown, "unknown"},
		{VerdictUnregistered, "unregistered"},
		{VerdictUnknownRegistration, "unknown_registration"},
		{9, "UNKNOWN(9)"}, {255, "UNKNOWN(255)"},
	}
	for _, tc := range cases {
		if got := tc.v.String(); got != tc.want {
			t.Errorf("String(%d) = %v, want %v", tc.v, got, tc.want)
		}
	}
}

func TestParseVerdict(t *testing.T) {
	cases := []struct {
		input string
		want  Verdict
	}{
		{"safe", VerdictSafe},
		{"invalid", VerdictInvalid},
		{"blacklisted", VerdictBlacklisted},
		{"dynamic", VerdictDynamic},
		{"suspicious", VerdictSuspicious},
		{"nonexistent", VerdictNonexistent},
		{"unknown", VerdictUnknown},
		{"unregistered", VerdictUnregistered},
		{"unknown_registration", VerdictUnknownRegistration},
		{"", VerdictUnknown}, {"foo", VerdictUnknown}, {"SAFE", VerdictUnknown},
	}
	for _, tc := range cases {
		if got := ParseVerdict(tc.input); got != tc.want {
			t.Errorf("ParseVerdict(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestVerdict_RoundTrip(t *testing.T) {
	for v := VerdictSafe; v.IsValid(); v++ {
		if got := ParseVerdict(v.String()); got != v {
			t.Errorf("ParseVerdict(String(%d)) = %v, want %v", v, got, v)
		}
	}
}
