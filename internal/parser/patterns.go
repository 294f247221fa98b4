package parser

import "regexp"

// Token shape patterns shared across the selector, classifier and
// extractor. EZ-Pass statements always print dates as MM/DD/YY and entry
// times as HH:MM, so the patterns are strict full-token matches.
var (
	datePattern  = regexp.MustCompile(`^\d{2}/\d{2}/\d{2}$`)
	timePattern  = regexp.MustCompile(`^\d{2}:\d{2}$`)
	moneyPattern = regexp.MustCompile(`^-?\$[\d,]+\.\d{2}$`)
	// Transponder tag / plate reference: a long run of digits.
	tagPattern = regexp.MustCompile(`^\d{8,}$`)
)

// allDigits reports whether s is non-empty and consists only of ASCII
// digits. A token that satisfies this can never also match datePattern,
// which is what keeps the lane and double-date classifier rules disjoint.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
