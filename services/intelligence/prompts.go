package intelligence

import (
	"strconv"
	"strings"

	"loanguard/models"
)

const analysisCibilInstruction = "Additionally, the user has uploaded their CIBIL report. Analyze it for a more detailed CIBIL impact prediction and provide a confidence score (0-100) for your prediction."

const comparisonCibilInstruction = "Additionally, the user has uploaded their CIBIL report. Analyze it to provide a CIBIL Health Analysis, which includes a recommendation on which offer is better for their long-term credit health and a confidence score (0-100) for this recommendation."

const analysisTemplate = `
Perform a comprehensive analysis of the provided loan agreement text for a user in India with the following profile:
- Loan Type: {loanType}
- Loan Amount: ₹{loanAmount}
- Loan Tenure: {loanTenure}
- Income Stability: {incomeStability}
- Monthly Income: {monthlyIncome}
- Existing EMIs: {existingEMIs}
- CIBIL Score: {cibilScore}

Loan Agreement Text:
---
{loanText}
---

{cibilInstruction}

Provide a detailed, multi-faceted analysis covering the points below. All financial calculations should be based on the provided text, using the user's specified loan tenure of {loanTenure}. If a tenure is explicitly mentioned in the loan text, prioritize that over the user's input. IMPORTANT: The principal loan amount for all calculations is ₹{loanAmount}.

1.  **Extract Key Terms**: Identify interest rate, processing fee, prepayment penalty, late payment charges, and any mandatory insurance linkage. If a term is not mentioned, state "Not Mentioned".
2.  **Calculate Loan Fit Score**: A score from 0-100 indicating how suitable this loan is.
3.  **Total Cost Calculation**: Calculate the total amount payable, total interest, total fees (processing fee, etc.), and express the total interest as a percentage of the principal amount.
4.  **Enhanced Affordability Warning**: Assess affordability against RBI guidelines (total EMIs should not exceed 40-50% of income). Provide a general 'reason' string for the overall affordability, and for each of the following, provide a main 'value' (a single currency amount) and a 'details' string explaining the calculation:
    - 'safeEMILimit': The user's safe EMI limit in INR. The details should explain how it's calculated from their income (e.g., "(Based on 40% of estimated ₹45,000 monthly income)").
    - 'monthlyBurden': The potential total monthly EMI burden including this new loan. The details should explain the components (e.g., "(New EMI + Estimated Existing EMIs)").
    - 'recommendedLoanAmount': A recommended optimal loan amount for their income. The details should explain the parameters used for this recommendation (e.g., "(If you wish to utilize your full safe EMI capacity of ₹14,400 per month after existing EMIs, for a 5-year tenure at 11.5% interest.)").
5.  **Enhanced CIBIL Impact Prediction**: Provide a main prediction, then detail the specific score impact (e.g., "Potential drop of 5-10 points initially, then rise with timely payments"), warn about default risks, and offer advice for improving their credit profile with this loan.
6.  **Market Comparison**: Compare the loan's interest rate with current standard rates from major Indian banks (like SBI, HDFC, ICICI). State the standard rate range, calculate potential total savings if they got a better rate, and list the recommended lenders.
7.  **Government Scheme Comparison**: Based on the loan's purpose, identify relevant government-backed loan schemes (e.g., Mudra, PM SVANidhi). Provide a brief comparison, calculate potential savings with a government scheme, and list up to two schemes with their name, typical interest rate, and a direct link to the official government portal.
8.  **Identify Red Flags**: List any predatory or unfavorable terms with a severity (High, Medium, Low).
9.  **Action Plan**: Give a final, decisive verdict: 'DO NOT SIGN', 'Proceed with Caution', or 'Looks Good'. Provide a list of 2-3 clear, actionable next steps for the user.

IMPORTANT: Return the entire analysis as a valid JSON object with the following structure:
{
  "loanFitScore": number,
  "extractedTerms": {
    "interestRate": "string",
    "processingFee": "string",
    "prepaymentPenalty": "string",
    "latePaymentCharges": "string",
    "insuranceLinkage": "string"
  },
  "redFlags": [{"severity": "High|Medium|Low", "indicator": "string", "details": "string"}],
  "totalCostAnalysis": {
    "totalPayable": "string",
    "totalInterest": "string",
    "totalFees": "string",
    "interestPercentage": "string"
  },
  "enhancedAffordability": {
    "isAffordable": boolean,
    "reason": "string",
    "safeEMILimit": {"value": "string", "details": "string"},
    "monthlyBurden": {"value": "string", "details": "string"},
    "recommendedLoanAmount": {"value": "string", "details": "string"}
  },
  "detailedCibilImpact": {
    "predictionText": "string",
    "scoreImpact": "string",
    "defaultRiskWarning": "string",
    "improvementAdvice": "string"
  },
  "marketRateComparison": {
    "comparisonText": "string",
    "potentialSavings": "string",
    "recommendedLenders": ["string"]
  },
  "governmentSchemeComparison": {
    "comparisonText": "string",
    "potentialSavings": "string",
    "schemes": [{"name": "string", "interestRate": "string", "portalLink": "string"}]
  },
  "actionPlan": {
    "finalVerdict": "DO NOT SIGN|Proceed with Caution|Looks Good",
    "nextSteps": ["string"]
  },
  "cibilImpactConfidenceScore": number
}
`

const comparisonTemplate = `
Compare two loan offers for a user in India with the following profile:
- Loan Type: {loanType}
- Loan Amount: ₹{loanAmount}
- Loan Tenure: {loanTenure}
- CIBIL Score: {cibilScore}
- Monthly Income: {monthlyIncome}

Loan Offer A:
---
{offerA}
---

Loan Offer B:
---
{offerB}
---

{cibilInstruction}

Provide a detailed comparison with winner, reasoning, cost difference, feature matrix, and CIBIL health analysis if applicable.

IMPORTANT: Return the entire comparison as a valid JSON object with the following structure:
{
  "winner": "Offer A" or "Offer B",
  "reasoning": "detailed explanation of why the winner is better",
  "costDifference": "total cost difference between offers",
  "featureMatrix": [
    {"feature": "Interest Rate", "offerA": "value", "offerB": "value"},
    {"feature": "Processing Fee", "offerA": "value", "offerB": "value"}
  ],
  "cibilHealthAnalysis": {
    "recommendation": "which offer is better for credit health",
    "confidenceScore": number (0-100)
  }
}
`

const schemeTemplate = `
Find relevant Indian government-backed loan schemes for the following request:
- Purpose of Loan: {loanPurpose}
- Loan Amount: ₹{loanAmount}

Provide up to 5 relevant government schemes with details about their benefits, eligibility, and application process.

IMPORTANT: Return the entire list as a valid JSON array with the following structure:
[
  {
    "name": "scheme name",
    "description": "scheme description",
    "interestRateComparison": "how interest rate compares to market",
    "eligibility": ["criteria 1", "criteria 2"],
    "applicationGuidance": "how to apply"
  }
]
`

// FormatAmount renders an amount the shortest way that round-trips, so
// 500000 becomes "500000" and 1.5 stays "1.5".
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// User text is substituted in a single pass so placeholders inside it are
// never expanded.
func profilePairs(p models.UserProfile) []string {
	return []string{
		"{loanType}", string(p.LoanType),
		"{loanAmount}", FormatAmount(p.LoanAmount),
		"{loanTenure}", string(p.LoanTenure),
		"{incomeStability}", string(p.IncomeStability),
		"{monthlyIncome}", string(p.MonthlyIncome),
		"{existingEMIs}", string(p.ExistingEMIs),
		"{cibilScore}", string(p.CibilScore),
	}
}

func BuildAnalysisPrompt(loanText string, profile models.UserProfile, withReport bool) string {
	instruction := ""
	if withReport {
		instruction = analysisCibilInstruction
	}
	pairs := append(profilePairs(profile),
		"{loanText}", loanText,
		"{cibilInstruction}", instruction,
	)
	return strings.NewReplacer(pairs...).Replace(analysisTemplate)
}

func BuildComparisonPrompt(offerA, offerB string, profile models.UserProfile, withReport bool) string {
	instruction := ""
	if withReport {
		instruction = comparisonCibilInstruction
	}
	pairs := append(profilePairs(profile),
		"{offerA}", offerA,
		"{offerB}", offerB,
		"{cibilInstruction}", instruction,
	)
	return strings.NewReplacer(pairs...).Replace(comparisonTemplate)
}

func BuildSchemePrompt(loanPurpose string, loanAmount float64) string {
	return strings.NewReplacer(
		"{loanPurpose}", loanPurpose,
		"{loanAmount}", FormatAmount(loanAmount),
	).Replace(schemeTemplate)
}
