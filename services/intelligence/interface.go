// File: loanguard/services/intelligence/interface.go
package intelligence

import (
	"context"
	"time"

	"loanguard/models"

	"go.uber.org/zap"
)

type LoanAdvisor interface {
	AnalyzeLoanAgreement(ctx context.Context, loanText string, profile models.UserProfile, report *models.CIBILReport) (*models.LoanAnalysisResult, error)
	CompareLoanOffers(ctx context.Context, offerA, offerB string, profile models.UserProfile, report *models.CIBILReport) (*models.LoanComparisonResult, error)
	CheckGovernmentSchemes(ctx context.Context, loanPurpose, loanAmount string) ([]models.GovernmentScheme, error)
}

// AdvisorOptions tunes DefaultLoanAdvisor. A zero Timeout means the caller's
// context alone bounds the remote call.
type AdvisorOptions struct {
	Timeout      time.Duration
	StrictSchema bool
}

// DefaultLoanAdvisor is the production implementation backed by a
// ContentGenerator.
type DefaultLoanAdvisor struct {
	Generator ContentGenerator
	Options   AdvisorOptions
	Logger    *zap.Logger
}

func NewLoanAdvisor(gen ContentGenerator, opts AdvisorOptions, logger *zap.Logger) *DefaultLoanAdvisor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultLoanAdvisor{Generator: gen, Options: opts, Logger: logger}
}
