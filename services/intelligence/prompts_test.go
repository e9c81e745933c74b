package intelligence

import (
	"strings"
	"testing"

	"loanguard/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildAnalysisPromptInterpolatesProfile(t *testing.T) {
	profile := models.DefaultProfile()
	prompt := BuildAnalysisPrompt("Interest Rate: 28% (Flat Rate)", profile, false)

	assert.Contains(t, prompt, "- Loan Type: Personal Loan")
	assert.Contains(t, prompt, "- Loan Amount: ₹500000")
	assert.Contains(t, prompt, "- Existing EMIs: Less than 10% of income")
	assert.Contains(t, prompt, "using the user's specified loan tenure of 5 years")
	assert.Contains(t, prompt, "---\nInterest Rate: 28% (Flat Rate)\n---")
	assert.NotContains(t, prompt, "CIBIL report")
	assert.NotContains(t, prompt, "{loanAmount}")
}

func TestBuildAnalysisPromptWithReport(t *testing.T) {
	prompt := BuildAnalysisPrompt("terms", models.DefaultProfile(), true)
	assert.Contains(t, prompt, analysisCibilInstruction)
}

func TestBuildComparisonPrompt(t *testing.T) {
	prompt := BuildComparisonPrompt("offer one", "offer two", models.DefaultProfile(), true)
	assert.Contains(t, prompt, "Loan Offer A:\n---\noffer one\n---")
	assert.Contains(t, prompt, "Loan Offer B:\n---\noffer two\n---")
	assert.Contains(t, prompt, comparisonCibilInstruction)
	assert.NotContains(t, prompt, "Income Stability")
}

func TestBuildSchemePrompt(t *testing.T) {
	prompt := BuildSchemePrompt("Starting a small business", 50000.5)
	assert.Contains(t, prompt, "- Purpose of Loan: Starting a small business")
	assert.Contains(t, prompt, "- Loan Amount: ₹50000.5")
	assert.True(t, strings.Contains(prompt, "valid JSON array"))
}

func TestUserTextIsNotExpanded(t *testing.T) {
	prompt := BuildAnalysisPrompt("see {loanType} clause", models.DefaultProfile(), false)
	assert.Contains(t, prompt, "see {loanType} clause")
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "500000", FormatAmount(500000))
	assert.Equal(t, "1.5", FormatAmount(1.5))
	assert.Equal(t, "1250000", FormatAmount(1.25e6))
}
