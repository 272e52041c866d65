package analyzer

import (
	"fmt"
	"strings"
)

// suspiciousKeywords flag URLs that borrow credential-phishing vocabulary.
var suspiciousKeywords = []string{"scam", "phish", "login", "verify", "bank", "update"}

// maxURLLength is the length beyond which a URL is considered suspicious.
const maxURLLength = 75

// IsSuspicious applies the fixed heuristic rules to a normalized URL and
// returns whether any rule matched, along with the matching rule's reason.
// Pure and total: no I/O, never fails.
func IsSuspicious(url string) (bool, string) {
	lower := strings.ToLower(url)
	for _, kw := range suspiciousKeywords {
		if strings.Contains(lower, kw) {
			return true, fmt.Sprintf("contains keyword %q", kw)
		}
	}
	if len(url) > maxURLLength {
		return true, fmt.Sprintf("unusually long (%d characters)", len(url))
	}
	if strings.Contains(url, "@") {
		return true, `contains "@"`
	}
	if strings.Count(url, "//") > 1 {
		return true, `contains multiple "//" separators`
	}
	return false, ""
}
