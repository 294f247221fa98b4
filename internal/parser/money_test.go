package parser

import "testing"

func TestMoneyToFloat(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"$1.74", 1.74, true},
		{"-$6.94", -6.94, true},
		{"$100.00", 100.00, true},
		{"$1,234.56", 1234.56, true},
		{"-$1,234,567.89", -1234567.89, true},
		{"$0.00", 0.00, true},
		{" $2.50 ", 2.50, true},
		{"2.50", 2.50, true},
		{"", 0, false},
		{"$", 0, false},
		{"STANDARD", 0, false},
		{"04/06/25", 0, false},
		{"$1.2.3", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := MoneyToFloat(tt.input)
			if ok != tt.ok {
				t.Fatalf("MoneyToFloat(%q) ok: got %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.expected {
				t.Errorf("MoneyToFloat(%q): got %f, want %f", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMoneyNumericNilOnFailure(t *testing.T) {
	if v := moneyNumeric("not money"); v != nil {
		t.Errorf("expected nil, got %f", *v)
	}
	if v := moneyNumeric("-$6.94"); v == nil || *v != -6.94 {
		t.Errorf("expected -6.94, got %v", v)
	}
}
