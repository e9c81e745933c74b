// File: loanguard/services/intelligence/service.go
package intelligence

import (
	"context"
	"errors"
	"time"

	"loanguard/metrics"
	"loanguard/models"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
)

func (a *DefaultLoanAdvisor) AnalyzeLoanAgreement(ctx context.Context, loanText string, profile models.UserProfile, report *models.CIBILReport) (*models.LoanAnalysisResult, error) {
	if err := ValidateAnalysisInput(loanText, profile); err != nil {
		metrics.AdvisorCalls.WithLabelValues(OpAnalysis, metrics.OutcomeValidation).Inc()
		return nil, err
	}
	prompt := BuildAnalysisPrompt(loanText, profile, report != nil)
	return invoke[models.LoanAnalysisResult](ctx, a, OpAnalysis, prompt, report)
}

func (a *DefaultLoanAdvisor) CompareLoanOffers(ctx context.Context, offerA, offerB string, profile models.UserProfile, report *models.CIBILReport) (*models.LoanComparisonResult, error) {
	if err := ValidateComparisonInput(offerA, offerB); err != nil {
		metrics.AdvisorCalls.WithLabelValues(OpComparison, metrics.OutcomeValidation).Inc()
		return nil, err
	}
	prompt := BuildComparisonPrompt(offerA, offerB, profile, report != nil)
	return invoke[models.LoanComparisonResult](ctx, a, OpComparison, prompt, report)
}

func (a *DefaultLoanAdvisor) CheckGovernmentSchemes(ctx context.Context, loanPurpose, loanAmount string) ([]models.GovernmentScheme, error) {
	if err := ValidateSchemeInput(loanPurpose, loanAmount); err != nil {
		metrics.AdvisorCalls.WithLabelValues(OpSchemes, metrics.OutcomeValidation).Inc()
		return nil, err
	}
	amount, err := ParseSchemeAmount(loanAmount)
	if err != nil {
		metrics.AdvisorCalls.WithLabelValues(OpSchemes, metrics.OutcomeValidation).Inc()
		return nil, err
	}
	schemes, err := invoke[[]models.GovernmentScheme](ctx, a, OpSchemes, BuildSchemePrompt(loanPurpose, amount), nil)
	if err != nil {
		return nil, err
	}
	return *schemes, nil
}

// invoke performs the single remote call of an operation and decodes its
// reply into T. Every failure past this point becomes the operation's
// generic OperationError.
func invoke[T any](ctx context.Context, a *DefaultLoanAdvisor, op, prompt string, report *models.CIBILReport) (*T, error) {
	logger := a.Logger.With(zap.String("operation", op))

	if a.Options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.Options.Timeout)
		defer cancel()
	}

	parts := []genai.Part{genai.Text(prompt)}
	if report != nil {
		parts = append(parts, genai.Blob{MIMEType: report.MIMEType, Data: report.Data})
	}

	start := time.Now()
	raw, err := a.Generator.GenerateContent(ctx, parts...)
	metrics.AdvisorDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		logger.Error("Remote generation failed", zap.Error(err), zap.Bool("deadlineExceeded", errors.Is(err, context.DeadlineExceeded)))
		return nil, a.fail(op)
	}

	result, err := ParseJSON[T](raw)
	if err != nil {
		logger.Error("Failed to parse model response", zap.Error(err), zap.String("raw", raw))
		return nil, a.fail(op)
	}

	if err := checkSchema(op, StripFences(raw)); err != nil {
		metrics.SchemaViolations.WithLabelValues(op).Inc()
		logger.Warn("Model response deviates from requested schema", zap.Error(err))
		if a.Options.StrictSchema {
			return nil, a.fail(op)
		}
	}

	metrics.AdvisorCalls.WithLabelValues(op, metrics.OutcomeOK).Inc()
	return result, nil
}

func (a *DefaultLoanAdvisor) fail(op string) error {
	metrics.AdvisorCalls.WithLabelValues(op, metrics.OutcomeInvalidResponse).Inc()
	return newOperationError(op)
}
