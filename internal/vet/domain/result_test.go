package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResult_Valid(t *testing.T) {
	r, err := NewResult("http://example.com", VerdictSafe, 0, "Whitelisted", SuggestNone)
	require.NoError(t, err)
	assert.Equal(t, "http://example.com", r.URL)
	assert.Equal(t, VerdictSafe, r.Verdict)
	assert.Equal(t, uint8(0), r.Risk)
	assert.Equal(t, SuggestNone, r.SuggestAdd)
}

func TestNewResult_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		verdict Verdict
		risk    uint8
		suggest Suggestion
	}{
		{"bad verdict", Verdict(42), 0, SuggestNone},
		{"risk out of range", VerdictSafe, 101, SuggestNone},
		{"bad suggestion", VerdictSafe, 0, Suggestion(9)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewResult("http://example.com", tc.verdict, tc.risk, "", tc.suggest)
			assert.Error(t, err)
		})
	}
}

func TestResult_IsConclusive(t *testing.T) {
	cases := []struct {
		verdict Verdict
		want    bool
	}{
		{VerdictSafe, true},
		{VerdictInvalid, true},
		{VerdictBlacklisted, true},
		{VerdictDynamic, true},
		{VerdictSuspicious, true},
		{VerdictNonexistent, true},
		{VerdictUnregistered, true},
		{VerdictUnknown, false},
		{VerdictUnknownRegistration, false},
	}
	for _, tc := range cases {
		r := Result{Verdict: tc.verdict}
		if got := r.IsConclusive(); got != tc.want {
			t.Errorf("IsConclusive(%s) = %v, want %v", tc.verdict, got, tc.want)
		}
	}
}
