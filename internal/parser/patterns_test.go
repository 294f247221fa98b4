package parser

import "testing"

func TestTokenPatterns(t *testing.T) {
	tests := []struct {
		tok   string
		date  bool
		time  bool
		money bool
		tag   bool
	}{
		{"04/06/25", true, false, false, false},
		{"4/6/25", false, false, false, false},
		{"04/06/2025", false, false, false, false},
		{"04:27", false, true, false, false},
		{"-$6.94", false, false, true, false},
		{"$1,234.56", false, false, true, false},
		{"$6.9", false, false, false, false},
		{"00504721314", false, false, false, true},
		{"1234567", false, false, false, false},
		{"STANDARD", false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			if got := datePattern.MatchString(tt.tok); got != tt.date {
				t.Errorf("date: got %v, want %v", got, tt.date)
			}
			if got := timePattern.MatchString(tt.tok); got != tt.time {
				t.Errorf("time: got %v, want %v", got, tt.time)
			}
			if got := moneyPattern.MatchString(tt.tok); got != tt.money {
				t.Errorf("money: got %v, want %v", got, tt.money)
			}
			if got := tagPattern.MatchString(tt.tok); got != tt.tag {
				t.Errorf("tag: got %v, want %v", got, tt.tag)
			}
		})
	}
}
