package parser

import "testing"

func TestStatementParserParse(t *testing.T) {
	p := &StatementParser{}

	pages := []string{
		`E-ZPass New York Service Center
Statement Date: 04/10/25
31420710413 04/06/25 00504721314 MTAB&T BWB 04/04/25 04:27 STANDARD 31 -$6.94 $73.15
04/03/25 Monthly Service Fee -$1.00 -$19.91`,
		`Page 2
04/05/25 Prepaid Toll Payment $100.00 $80.09`,
	}

	records := p.Parse(pages)
	if len(records) != 3 {
		t.Fatalf("records: got %d, want 3", len(records))
	}

	// Page order, then line order.
	if records[0].LaneTxnID != "31420710413" {
		t.Errorf("records[0]: got %+v", records[0])
	}
	if records[1].Description != "Monthly Service Fee" {
		t.Errorf("records[1].Description: got %q", records[1].Description)
	}
	if records[2].Description != "Prepaid Toll Payment" {
		t.Errorf("records[2].Description: got %q", records[2].Description)
	}
	if records[2].Amount != "$100.00" || records[2].Balance != "$80.09" {
		t.Errorf("records[2] money: got %q %q", records[2].Amount, records[2].Balance)
	}
}

func TestStatementParserParseEmptyDocument(t *testing.T) {
	p := &StatementParser{}
	if records := p.Parse([]string{"", "nothing transactional here"}); len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestStatementParserAnchored(t *testing.T) {
	p := &StatementParser{StartAnchor: "TRANSACTION DETAIL", EndAnchor: "TOTALS"}

	pages := []string{
		`TRANSACTION DETAIL
04/03/25 Monthly Service Fee -$1.00 -$19.91
TOTALS
04/09/25 After End Fee -$2.00 $1.00`,
		`no anchor on this page
04/05/25 Prepaid Toll Payment $100.00 $80.09`,
	}

	records := p.Parse(pages)
	if len(records) != 1 {
		t.Fatalf("records: got %d, want 1", len(records))
	}
	if records[0].Description != "Monthly Service Fee" {
		t.Errorf("records[0].Description: got %q", records[0].Description)
	}
}

func TestStatementParserMetadata(t *testing.T) {
	p := &StatementParser{}
	md := p.Metadata([]string{"Statement Date: 04/10/25", "Ending Balance: $73.15"})
	if md.StatementDate != "04/10/25" {
		t.Errorf("StatementDate: got %q", md.StatementDate)
	}
	if md.EndingBalance != "$73.15" {
		t.Errorf("EndingBalance: got %q", md.EndingBalance)
	}
}
