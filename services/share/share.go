// File: loanguard/services/share/share.go
package share

import (
	"fmt"
	"strings"

	"loanguard/models"
)

const whatsAppBase = "https://wa.me/?text="

func AnalysisSummary(r *models.LoanAnalysisResult) string {
	return fmt.Sprintf(`I analyzed a loan with LoanGuard AI and got a crucial verdict: "%s"!
- *Loan Fit Score*: %s/100
- *Total Interest*: %s
- *Key Finding*: The AI recommended alternative lenders that could save me %s.

Check your own loans with LoanGuard AI!`,
		r.ActionPlan.FinalVerdict,
		r.LoanFitScore,
		r.TotalCostAnalysis.TotalInterest,
		r.MarketRateComparison.PotentialSavings,
	)
}

func ComparisonSummary(r *models.LoanComparisonResult) string {
	return fmt.Sprintf(`LoanGuard AI helped me compare two loans!
- *Winner*: %s
- *Reason*: %s
- *Potential Savings*: %s

You should try it too!`,
		r.Winner,
		r.Reasoning,
		r.CostDifference,
	)
}

// AnalysisShareURL returns a WhatsApp link pre-filled with the analysis summary.
func AnalysisShareURL(r *models.LoanAnalysisResult) string {
	return whatsAppBase + EncodeURIComponent(AnalysisSummary(r))
}

func ComparisonShareURL(r *models.LoanComparisonResult) string {
	return whatsAppBase + EncodeURIComponent(ComparisonSummary(r))
}

// EncodeURIComponent percent-encodes every UTF-8 byte outside
// A-Z a-z 0-9 - _ . ! ~ * ' ( ), which is what browsers do for a query
// component. Spaces become %20, never '+'.
func EncodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0F])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
