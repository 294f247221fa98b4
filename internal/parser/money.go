package parser

import (
	"strconv"
	"strings"
)

// MoneyToFloat converts a money token like "$1.74", "-$6.94" or
// "$1,234.56" into its signed numeric value. The boolean is false when
// the token does not reduce to a decimal number after stripping the
// currency sign, thousands separators and sign markers. Callers keep the
// original token; the numeric value is derived alongside it, never a
// replacement.
func MoneyToFloat(tok string) (float64, bool) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return 0, false
	}

	negative := strings.HasPrefix(tok, "-")

	tok = strings.ReplaceAll(tok, "$", "")
	tok = strings.ReplaceAll(tok, ",", "")
	tok = strings.ReplaceAll(tok, "-", "")

	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}
	if negative {
		return -v, true
	}
	return v, true
}

// moneyNumeric is the nullable-column form used when building records.
func moneyNumeric(tok string) *float64 {
	v, ok := MoneyToFloat(tok)
	if !ok {
		return nil
	}
	return &v
}
