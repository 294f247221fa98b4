package models

import "strconv"

// RowKind distinguishes toll charges from account-level fee/payment rows.
type RowKind string

const (
	// KindToll marks a physical toll charge with plaza/agency detail.
	KindToll RowKind = "toll"
	// KindFee marks a non-toll account event (service fee, payment) or a
	// line too short to map positionally.
	KindFee RowKind = "fee"
)

// TollDetails holds the fields that only exist on toll rows. Keeping them
// behind a pointer on TransactionRecord means a fee row cannot carry a
// plaza or vehicle class by construction.
type TollDetails struct {
	TagOrPlate   string `json:"tagOrPlate,omitempty"`
	Agency       string `json:"agency,omitempty"`
	Plaza        string `json:"plaza,omitempty"`
	EntryDate    string `json:"entryDate,omitempty"`
	EntryTime    string `json:"entryTime,omitempty"`
	ExitPlaza    string `json:"exitPlaza,omitempty"`
	ExitDate     string `json:"exitDate,omitempty"`
	ExitTime     string `json:"exitTime,omitempty"`
	Plan         string `json:"plan,omitempty"`
	VehicleClass string `json:"vehicleClass,omitempty"`
}

// TransactionRecord is one parsed statement line. Dates are kept verbatim
// as MM/DD/YY strings and are never parsed into time values. Amount and
// Balance are always the last two tokens of the matched line, unmodified;
// the numeric twins are derived and nil when the token is not money-shaped.
// Records are never mutated after the parser returns them.
type TransactionRecord struct {
	Kind            RowKind      `json:"kind"`
	LaneTxnID       string       `json:"laneTxnId,omitempty"`
	PostingDate     string       `json:"postingDate"`
	TransactionDate string       `json:"transactionDate,omitempty"`
	Toll            *TollDetails `json:"toll,omitempty"`
	Description     string       `json:"description,omitempty"`
	Amount          string       `json:"amount"`
	Balance         string       `json:"balance"`
	AmountNumeric   *float64     `json:"amountNumeric,omitempty"`
	BalanceNumeric  *float64     `json:"balanceNumeric,omitempty"`
	SourceDocument  string       `json:"sourceDocument,omitempty"`
}

// StatementMetadata holds document-level summary fields pulled from the
// full statement text. Every field is independently optional; a label the
// statement does not carry stays empty.
type StatementMetadata struct {
	StatementDate       string `json:"statementDate,omitempty"`
	AccountNumber       string `json:"accountNumber,omitempty"`
	Agency              string `json:"agency,omitempty"`
	ActivityStart       string `json:"activityStart,omitempty"`
	ActivityEnd         string `json:"activityEnd,omitempty"`
	BeginningBalance    string `json:"beginningBalance,omitempty"`
	TollsFeesSubtotal   string `json:"tollsFeesSubtotal,omitempty"`
	PaymentsAdjustments string `json:"paymentsAdjustments,omitempty"`
	EndingBalance       string `json:"endingBalance,omitempty"`
	SourceDocument      string `json:"sourceDocument,omitempty"`
}

// Columns is the stable export column order shared by the xlsx and csv
// writers and the API response.
var Columns = []string{
	"lane_txn_id",
	"posting_date",
	"transaction_date",
	"tag_or_plate",
	"agency",
	"plaza",
	"entry_date",
	"entry_time",
	"exit_plaza",
	"exit_date",
	"exit_time",
	"plan",
	"vehicle_class",
	"amount",
	"balance",
	"amount_numeric",
	"balance_numeric",
	"description",
	"source_document",
}

// ColumnValues flattens a record into Columns order. Absent optional
// fields render as empty cells.
func (r *TransactionRecord) ColumnValues() []string {
	toll := r.Toll
	if toll == nil {
		toll = &TollDetails{}
	}
	return []string{
		r.LaneTxnID,
		r.PostingDate,
		r.TransactionDate,
		toll.TagOrPlate,
		toll.Agency,
		toll.Plaza,
		toll.EntryDate,
		toll.EntryTime,
		toll.ExitPlaza,
		toll.ExitDate,
		toll.ExitTime,
		toll.Plan,
		toll.VehicleClass,
		r.Amount,
		r.Balance,
		formatNumeric(r.AmountNumeric),
		formatNumeric(r.BalanceNumeric),
		r.Description,
		r.SourceDocument,
	}
}

// CellValues is the spreadsheet form of ColumnValues: numeric columns
// come through as float64 so the workbook stores real numbers.
func (r *TransactionRecord) CellValues() []any {
	vals := r.ColumnValues()
	cells := make([]any, len(vals))
	for i, v := range vals {
		cells[i] = v
	}
	if r.AmountNumeric != nil {
		cells[15] = *r.AmountNumeric
	}
	if r.BalanceNumeric != nil {
		cells[16] = *r.BalanceNumeric
	}
	return cells
}

func formatNumeric(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

// MetadataColumns is the stable column order for statement-level
// summary rows.
var MetadataColumns = []string{
	"source_document",
	"statement_date",
	"account_number",
	"agency",
	"activity_start",
	"activity_end",
	"beginning_balance",
	"tolls_fees_subtotal",
	"payments_adjustments",
	"ending_balance",
}

// ColumnValues flattens metadata into MetadataColumns order.
func (m *StatementMetadata) ColumnValues() []string {
	return []string{
		m.SourceDocument,
		m.StatementDate,
		m.AccountNumber,
		m.Agency,
		m.ActivityStart,
		m.ActivityEnd,
		m.BeginningBalance,
		m.TollsFeesSubtotal,
		m.PaymentsAdjustments,
		m.EndingBalance,
	}
}
