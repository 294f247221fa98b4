package parser

import (
	"regexp"
	"strings"

	"github.com/Torinad2/EZ-Pass/internal/models"
)

// Labeled summary fields printed in the statement header and totals box.
// Each pattern captures the value following its label; labels vary a
// little between statement generations, hence the alternations.
var (
	statementDateLabel = regexp.MustCompile(`(?i)statement\s+date:?\s*(\d{2}/\d{2}/\d{2,4})`)
	accountNumberLabel = regexp.MustCompile(`(?i)account\s+(?:number|no\.?|#):?\s*(\d[\d-]*)`)
	activityLabel      = regexp.MustCompile(`(?i)activity\s+(?:period|from|between)?:?\s*(\d{2}/\d{2}/\d{2,4})\s*(?:to|through|-)\s*(\d{2}/\d{2}/\d{2,4})`)
	beginBalanceLabel  = regexp.MustCompile(`(?i)(?:beginning|opening|previous)\s+balance:?\s*(-?\$[\d,]+\.\d{2})`)
	tollsFeesLabel     = regexp.MustCompile(`(?i)tolls\s*(?:&|and)?\s*fees:?\s*(-?\$[\d,]+\.\d{2})`)
	paymentsLabel      = regexp.MustCompile(`(?i)payments\s*(?:&|and)?\s*adjustments:?\s*(-?\$[\d,]+\.\d{2})`)
	endBalanceLabel    = regexp.MustCompile(`(?i)(?:ending|closing|new)\s+balance:?\s*(-?\$[\d,]+\.\d{2})`)
)

// ExtractMetadata pulls document-level summary fields from the
// concatenated page text. Every field is independently optional: a label
// the statement does not print simply stays empty. This runs once per
// document and is not a prerequisite for line parsing.
func ExtractMetadata(fullText string) models.StatementMetadata {
	md := models.StatementMetadata{
		StatementDate:       firstGroup(statementDateLabel, fullText),
		AccountNumber:       firstGroup(accountNumberLabel, fullText),
		Agency:              valueNearLabel(fullText, []string{"Agency:", "Issuing Agency:"}),
		BeginningBalance:    firstGroup(beginBalanceLabel, fullText),
		TollsFeesSubtotal:   firstGroup(tollsFeesLabel, fullText),
		PaymentsAdjustments: firstGroup(paymentsLabel, fullText),
		EndingBalance:       firstGroup(endBalanceLabel, fullText),
	}

	if m := activityLabel.FindStringSubmatch(fullText); m != nil {
		md.ActivityStart = m[1]
		md.ActivityEnd = m[2]
	}

	return md
}

func firstGroup(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

// valueNearLabel scans line by line for the first label occurrence and
// returns the trimmed text following it on the same line, cut at a
// double-space column gap.
func valueNearLabel(text string, labels []string) string {
	for _, line := range strings.Split(text, "\n") {
		for _, label := range labels {
			idx := strings.Index(line, label)
			if idx < 0 {
				continue
			}
			rest := strings.TrimSpace(line[idx+len(label):])
			if rest == "" {
				continue
			}
			parts := strings.SplitN(rest, "  ", 2)
			return strings.TrimSpace(parts[0])
		}
	}
	return ""
}
