package intelligence

import (
	"math"
	"strconv"
	"strings"

	"loanguard/models"
)

func ValidateAnalysisInput(loanText string, profile models.UserProfile) error {
	if profile.LoanAmount <= 0 {
		return &ValidationError{Message: MsgInvalidProfileAmount}
	}
	if strings.TrimSpace(loanText) == "" {
		return &ValidationError{Message: MsgMissingLoanText}
	}
	return nil
}

func ValidateComparisonInput(offerA, offerB string) error {
	if strings.TrimSpace(offerA) == "" || strings.TrimSpace(offerB) == "" {
		return &ValidationError{Message: MsgMissingOffers}
	}
	return nil
}

// ValidateSchemeInput only checks that both fields were filled in. The amount
// itself is parsed by ParseSchemeAmount.
func ValidateSchemeInput(loanPurpose, loanAmount string) error {
	if strings.TrimSpace(loanPurpose) == "" || strings.TrimSpace(loanAmount) == "" {
		return &ValidationError{Message: MsgMissingSchemeInput}
	}
	return nil
}

// ParseSchemeAmount accepts a finite decimal number greater than zero.
func ParseSchemeAmount(loanAmount string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(loanAmount), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, &ValidationError{Message: MsgInvalidSchemeAmount}
	}
	return amount, nil
}
