package parser

import (
	"strings"

	"github.com/Torinad2/EZ-Pass/internal/models"
)

// Toll rows need room for the fixed head (id/dates, tag, agency, plaza)
// plus the money tail before positional mapping is trustworthy. Shorter
// lines fall back to a free-text description instead of failing.
const (
	minLaneTollTokens       = 9
	maxDoubleDateFeeTokens  = 6
	tailLen                 = 4 // plan, class, amount, balance
	minTokensPerTransaction = 4
)

// ParseLine converts one candidate line into a record, or nil when the
// line matches no known layout. The last two tokens are always taken as
// amount and balance verbatim, whatever the variant.
func ParseLine(line string) *models.TransactionRecord {
	toks := strings.Fields(line)
	if len(toks) < minTokensPerTransaction {
		return nil
	}

	switch Classify(toks) {
	case VariantLane:
		return extractLane(toks)
	case VariantDoubleDate:
		return extractDoubleDate(toks)
	case VariantSingleDate:
		return extractSingleDate(toks)
	default:
		return nil
	}
}

// extractLane handles the newer layout:
//
//	LANE_TXN_ID POSTED_DATE TAG AGENCY PLAZA [ENTRY_DATE ENTRY_TIME ...] PLAN CL AMT BAL
func extractLane(toks []string) *models.TransactionRecord {
	rec := newRecord(toks)
	rec.LaneTxnID = toks[0]
	rec.PostingDate = toks[1]

	// Too short to carry the full toll schema: keep whatever text sits
	// between the posted date and the money tail as a description.
	if len(toks) < minLaneTollTokens {
		rec.Kind = models.KindFee
		if len(toks) > 4 {
			rec.Description = strings.Join(toks[2:len(toks)-2], " ")
		}
		return rec
	}

	rec.Kind = models.KindToll
	rec.Toll = extractTollDetails(toks)
	return rec
}

// extractDoubleDate handles the older layout, which prints both the
// posting date and the transaction date:
//
//	POSTING_DATE TXN_DATE TAG AGENCY PLAZA [...] PLAN CL AMT BAL
func extractDoubleDate(toks []string) *models.TransactionRecord {
	rec := newRecord(toks)
	rec.PostingDate = toks[0]
	rec.TransactionDate = toks[1]

	// Short double-date rows are fee/payment-like; the tokens between
	// the dates and the money tail (tag reference included, if any)
	// become the description.
	if len(toks) <= maxDoubleDateFeeTokens {
		rec.Kind = models.KindFee
		rec.Description = strings.Join(toks[2:len(toks)-2], " ")
		return rec
	}

	rec.Kind = models.KindToll
	rec.Toll = extractTollDetails(toks)
	return rec
}

// extractSingleDate handles fee/payment rows:
//
//	POSTED_DATE Description ... AMT BAL
func extractSingleDate(toks []string) *models.TransactionRecord {
	rec := newRecord(toks)
	rec.Kind = models.KindFee
	rec.PostingDate = toks[0]
	if len(toks) > 3 {
		rec.Description = strings.Join(toks[1:len(toks)-2], " ")
	}
	return rec
}

// extractTollDetails maps the positional toll fields. Both toll layouts
// place the tag at index 2 and the plaza at index 4; the tail is always
// PLAN CL AMT BAL, so the variable-length middle segment sits between
// index 5 and the fourth token from the end.
func extractTollDetails(toks []string) *models.TollDetails {
	d := &models.TollDetails{
		TagOrPlate:   toks[2],
		Agency:       toks[3],
		Plaza:        toks[4],
		Plan:         toks[len(toks)-tailLen],
		VehicleClass: toks[len(toks)-tailLen+1],
	}
	parseMiddle(toks[5:len(toks)-tailLen], d)
	return d
}

// parseMiddle resolves the variable-length span between the plaza and the
// tail. The common shape is [ENTRY_DATE ENTRY_TIME]; anything left over
// is read as EXIT_PLAZA [EXIT_DATE [EXIT_TIME]]. When the first token is
// not date-shaped the whole segment is treated as the exit portion.
// Trailing tokens beyond the exit triple are discarded.
func parseMiddle(middle []string, d *models.TollDetails) {
	if len(middle) == 0 {
		return
	}

	rest := middle
	if datePattern.MatchString(middle[0]) {
		d.EntryDate = middle[0]
		if len(middle) > 1 && timePattern.MatchString(middle[1]) {
			d.EntryTime = middle[1]
		}
		if len(middle) > 2 {
			rest = middle[2:]
		} else {
			rest = nil
		}
	}

	if len(rest) == 0 {
		return
	}
	d.ExitPlaza = rest[0]
	if len(rest) > 1 && datePattern.MatchString(rest[1]) {
		d.ExitDate = rest[1]
	}
	if len(rest) > 2 && timePattern.MatchString(rest[2]) {
		d.ExitTime = rest[2]
	}
}

// newRecord seeds a record with the money tail, which every variant
// shares: the last two tokens are amount and balance, kept verbatim,
// with numeric twins derived when the token is money-shaped.
func newRecord(toks []string) *models.TransactionRecord {
	amount := toks[len(toks)-2]
	balance := toks[len(toks)-1]
	return &models.TransactionRecord{
		Amount:         amount,
		Balance:        balance,
		AmountNumeric:  moneyNumeric(amount),
		BalanceNumeric: moneyNumeric(balance),
	}
}
