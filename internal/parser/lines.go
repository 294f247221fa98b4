package parser

import (
	"iter"
	"strings"
)

// TransactionLines yields the lines of one page that look like transaction
// rows, in page order. The sequence is lazy and can be ranged over more
// than once.
//
// A line qualifies when, after trimming, it has at least four whitespace
// tokens and either
//   - starts with a lane transaction id (all digits) followed by a
//     MM/DD/YY date (newer toll layout), or
//   - starts with a MM/DD/YY date (older toll layout and fee/payment rows).
func TransactionLines(pageText string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, raw := range strings.Split(pageText, "\n") {
			line := strings.TrimSpace(raw)
			if line == "" {
				continue
			}

			toks := strings.Fields(line)
			if len(toks) < 4 {
				continue
			}

			if allDigits(toks[0]) && datePattern.MatchString(toks[1]) {
				if !yield(line) {
					return
				}
				continue
			}

			if datePattern.MatchString(toks[0]) {
				if !yield(line) {
					return
				}
			}
		}
	}
}

// AnchoredTransactionLines is the stricter selector used when the
// statement layout brackets its activity table between two anchor
// phrases. Only the span after the first startAnchor and before the next
// endAnchor is considered; a page without the start anchor contributes
// nothing. Unlike TransactionLines, the first token must be a date —
// the lane-id form is not accepted here.
func AnchoredTransactionLines(pageText, startAnchor, endAnchor string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := strings.Index(pageText, startAnchor)
		if startAnchor == "" || start < 0 {
			return
		}
		span := pageText[start+len(startAnchor):]
		if endAnchor != "" {
			if end := strings.Index(span, endAnchor); end >= 0 {
				span = span[:end]
			}
		}

		for _, raw := range strings.Split(span, "\n") {
			line := strings.TrimSpace(raw)
			if line == "" {
				continue
			}
			toks := strings.Fields(line)
			if len(toks) < 4 || !datePattern.MatchString(toks[0]) {
				continue
			}
			if !yield(line) {
				return
			}
		}
	}
}
