package parser

import (
	"slices"
	"testing"
)

func collect(seq func(func(string) bool)) []string {
	var out []string
	for line := range seq {
		out = append(out, line)
	}
	return out
}

func TestTransactionLines(t *testing.T) {
	page := `E-ZPass New York Service Center
Account Number: 1234567

POSTED DATE TAG/PLATE AGENCY PLAZA PLAN CL AMT BALANCE
31420710413 04/06/25 00504721314 MTAB&T BWB 04/04/25 04:27 STANDARD 31 -$6.94 $73.15
04/03/25 Monthly Service Fee -$1.00 -$19.91
12/11/24 12/10/24 00504419585 MTAB&T GWB STANDARD 31 $1.74 $16.74
04/05/25 tiny
Page 1 of 2`

	got := collect(TransactionLines(page))
	want := []string{
		"31420710413 04/06/25 00504721314 MTAB&T BWB 04/04/25 04:27 STANDARD 31 -$6.94 $73.15",
		"04/03/25 Monthly Service Fee -$1.00 -$19.91",
		"12/11/24 12/10/24 00504419585 MTAB&T GWB STANDARD 31 $1.74 $16.74",
	}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTransactionLinesShortAndEmptyPages(t *testing.T) {
	if got := collect(TransactionLines("")); got != nil {
		t.Errorf("empty page: got %v, want nothing", got)
	}

	// Fewer than 4 tokens never qualifies, date or not.
	page := "04/03/25 Fee -$1.00\n31420710413 04/06/25 x"
	if got := collect(TransactionLines(page)); got != nil {
		t.Errorf("short lines: got %v, want nothing", got)
	}
}

func TestTransactionLinesIsRestartable(t *testing.T) {
	seq := TransactionLines("04/03/25 Monthly Service Fee -$1.00 -$19.91")
	first := collect(seq)
	second := collect(seq)
	if !slices.Equal(first, second) {
		t.Errorf("second pass %v differs from first %v", second, first)
	}
}

func TestAnchoredTransactionLines(t *testing.T) {
	page := `ACCOUNT SUMMARY
04/01/25 Out Of Span Fee -$9.99 $9.99
TRANSACTION DETAIL
04/03/25 Monthly Service Fee -$1.00 -$19.91
31420710413 04/06/25 00504721314 MTAB&T BWB STANDARD 31 -$6.94 $73.15
12/11/24 12/10/24 00504419585 MTAB&T GWB STANDARD 31 $1.74 $16.74
TOTALS
04/09/25 After End Fee -$2.00 $1.00`

	got := collect(AnchoredTransactionLines(page, "TRANSACTION DETAIL", "TOTALS"))
	// The lane-id line is not accepted by the anchored variant: it does
	// not begin with a date token.
	want := []string{
		"04/03/25 Monthly Service Fee -$1.00 -$19.91",
		"12/11/24 12/10/24 00504419585 MTAB&T GWB STANDARD 31 $1.74 $16.74",
	}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAnchoredTransactionLinesMissingStartAnchor(t *testing.T) {
	page := "04/03/25 Monthly Service Fee -$1.00 -$19.91"
	if got := collect(AnchoredTransactionLines(page, "TRANSACTION DETAIL", "TOTALS")); got != nil {
		t.Errorf("page without start anchor should yield nothing, got %v", got)
	}
}
