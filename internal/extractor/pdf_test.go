package extractor

import (
	"strings"
	"testing"
)

func TestTextQuality(t *testing.T) {
	clean := []string{"04/03/25 Monthly Service Fee -$1.00 -$19.91"}
	if q := textQuality(clean); q < 0.95 {
		t.Errorf("clean text quality: got %f, want near 1", q)
	}

	garbage := []string{strings.Repeat("�þ", 50)}
	if q := textQuality(garbage); q > 0.3 {
		t.Errorf("garbage text quality: got %f, want low", q)
	}

	if q := textQuality(nil); q != 0 {
		t.Errorf("empty input quality: got %f, want 0", q)
	}
}

func TestIsReadableText(t *testing.T) {
	statement := []string{`E-ZPass New York Service Center
Statement Date: 04/10/25
Account Number: 1234567
04/03/25 Monthly Service Fee -$1.00 -$19.91`}
	if !isReadableText(statement) {
		t.Error("real statement text should pass the readability gate")
	}

	if isReadableText([]string{"short"}) {
		t.Error("near-empty text must not pass")
	}

	// Readable characters but nothing statement-shaped.
	if isReadableText([]string{strings.Repeat("лоремипсум ", 30)}) {
		t.Error("non-ascii text without statement words must not pass")
	}
}

func TestContainsStatementWords(t *testing.T) {
	if !containsStatementWords([]string{"TOLL ACTIVITY DETAIL"}) {
		t.Error("expected match on toll vocabulary")
	}
	if containsStatementWords([]string{"completely unrelated prose"}) {
		t.Error("expected no match")
	}
}
