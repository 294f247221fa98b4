package parser

import "testing"

const sampleHeader = `E-ZPass New York Service Center
Statement Date: 04/10/25
Account Number: 1234567
Agency: MTAB&T
Activity Period: 04/01/25 to 04/30/25
Beginning Balance: $80.09
Tolls & Fees: -$6.94
Payments & Adjustments: $100.00
Ending Balance: $73.15`

func TestExtractMetadata(t *testing.T) {
	md := ExtractMetadata(sampleHeader)

	if md.StatementDate != "04/10/25" {
		t.Errorf("StatementDate: got %q", md.StatementDate)
	}
	if md.AccountNumber != "1234567" {
		t.Errorf("AccountNumber: got %q", md.AccountNumber)
	}
	if md.Agency != "MTAB&T" {
		t.Errorf("Agency: got %q", md.Agency)
	}
	if md.ActivityStart != "04/01/25" || md.ActivityEnd != "04/30/25" {
		t.Errorf("activity window: got %q %q", md.ActivityStart, md.ActivityEnd)
	}
	if md.BeginningBalance != "$80.09" {
		t.Errorf("BeginningBalance: got %q", md.BeginningBalance)
	}
	if md.TollsFeesSubtotal != "-$6.94" {
		t.Errorf("TollsFeesSubtotal: got %q", md.TollsFeesSubtotal)
	}
	if md.PaymentsAdjustments != "$100.00" {
		t.Errorf("PaymentsAdjustments: got %q", md.PaymentsAdjustments)
	}
	if md.EndingBalance != "$73.15" {
		t.Errorf("EndingBalance: got %q", md.EndingBalance)
	}
}

// A label the statement does not print stays empty; it is never an
// error.
func TestExtractMetadataMissingLabels(t *testing.T) {
	md := ExtractMetadata("Statement Date: 04/10/25\nsome unrelated text")
	if md.StatementDate != "04/10/25" {
		t.Errorf("StatementDate: got %q", md.StatementDate)
	}
	if md.AccountNumber != "" || md.Agency != "" || md.EndingBalance != "" {
		t.Errorf("missing labels should stay empty: %+v", md)
	}

	var zero = ExtractMetadata("")
	if zero != (ExtractMetadata("no labels here at all")) {
		t.Error("label-free text should produce the zero metadata")
	}
}

func TestExtractMetadataLabelSpellings(t *testing.T) {
	md := ExtractMetadata(`STATEMENT DATE 12/15/24
ACCOUNT # 7654321
Opening Balance: $10.00
New Balance: $5.00`)

	if md.StatementDate != "12/15/24" {
		t.Errorf("StatementDate: got %q", md.StatementDate)
	}
	if md.AccountNumber != "7654321" {
		t.Errorf("AccountNumber: got %q", md.AccountNumber)
	}
	if md.BeginningBalance != "$10.00" {
		t.Errorf("BeginningBalance: got %q", md.BeginningBalance)
	}
	if md.EndingBalance != "$5.00" {
		t.Errorf("EndingBalance: got %q", md.EndingBalance)
	}
}
