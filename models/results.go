package models

// Verdicts the analysis prompt asks for in actionPlan.finalVerdict.
const (
	VerdictDoNotSign = "DO NOT SIGN"
	VerdictCaution   = "Proceed with Caution"
	VerdictLooksGood = "Looks Good"
)

const (
	WinnerOfferA = "Offer A"
	WinnerOfferB = "Offer B"
)

const (
	SeverityHigh   = "High"
	SeverityMedium = "Medium"
	SeverityLow    = "Low"
)

type ExtractedTerms struct {
	InterestRate       Text `json:"interestRate"`
	ProcessingFee      Text `json:"processingFee"`
	PrepaymentPenalty  Text `json:"prepaymentPenalty"`
	LatePaymentCharges Text `json:"latePaymentCharges"`
	InsuranceLinkage   Text `json:"insuranceLinkage"`
}

type RedFlag struct {
	Severity  Text `json:"severity"`
	Indicator Text `json:"indicator"`
	Details   Text `json:"details"`
}

type TotalCostAnalysis struct {
	TotalPayable       Text `json:"totalPayable"`
	TotalInterest      Text `json:"totalInterest"`
	TotalFees          Text `json:"totalFees"`
	InterestPercentage Text `json:"interestPercentage"`
}

type AffordabilityMetric struct {
	Value   Text `json:"value"`
	Details Text `json:"details"`
}

type EnhancedAffordability struct {
	IsAffordable          Flag                `json:"isAffordable"`
	Reason                Text                `json:"reason"`
	SafeEMILimit          AffordabilityMetric `json:"safeEMILimit"`
	MonthlyBurden         AffordabilityMetric `json:"monthlyBurden"`
	RecommendedLoanAmount AffordabilityMetric `json:"recommendedLoanAmount"`
}

type DetailedCibilImpact struct {
	PredictionText     Text `json:"predictionText"`
	ScoreImpact        Text `json:"scoreImpact"`
	DefaultRiskWarning Text `json:"defaultRiskWarning"`
	ImprovementAdvice  Text `json:"improvementAdvice"`
}

type MarketRateComparison struct {
	ComparisonText     Text   `json:"comparisonText"`
	PotentialSavings   Text   `json:"potentialSavings"`
	RecommendedLenders []Text `json:"recommendedLenders"`
}

type GovernmentSchemeInfo struct {
	Name         Text `json:"name"`
	InterestRate Text `json:"interestRate"`
	PortalLink   Text `json:"portalLink"`
}

type GovernmentSchemeComparison struct {
	ComparisonText   Text                   `json:"comparisonText"`
	PotentialSavings Text                   `json:"potentialSavings"`
	Schemes          []GovernmentSchemeInfo `json:"schemes"`
}

type ActionPlan struct {
	FinalVerdict Text   `json:"finalVerdict"`
	NextSteps    []Text `json:"nextSteps"`
}

// LoanAnalysisResult is the structured verdict on a single loan agreement.
type LoanAnalysisResult struct {
	LoanFitScore               Number                     `json:"loanFitScore"`
	ExtractedTerms             ExtractedTerms             `json:"extractedTerms"`
	RedFlags                   []RedFlag                  `json:"redFlags"`
	TotalCostAnalysis          TotalCostAnalysis          `json:"totalCostAnalysis"`
	EnhancedAffordability      EnhancedAffordability      `json:"enhancedAffordability"`
	DetailedCibilImpact        DetailedCibilImpact        `json:"detailedCibilImpact"`
	MarketRateComparison       MarketRateComparison       `json:"marketRateComparison"`
	GovernmentSchemeComparison GovernmentSchemeComparison `json:"governmentSchemeComparison"`
	ActionPlan                 ActionPlan                 `json:"actionPlan"`
	CibilImpactConfidenceScore *Number                    `json:"cibilImpactConfidenceScore,omitempty"`
}

type FeatureMatrixItem struct {
	Feature Text `json:"feature"`
	OfferA  Text `json:"offerA"`
	OfferB  Text `json:"offerB"`
}

type CIBILHealthAnalysis struct {
	Recommendation  Text   `json:"recommendation"`
	ConfidenceScore Number `json:"confidenceScore"`
}

// LoanComparisonResult names the better of two offers and why.
type LoanComparisonResult struct {
	Winner              Text                 `json:"winner"`
	Reasoning           Text                 `json:"reasoning"`
	CostDifference      Text                 `json:"costDifference"`
	FeatureMatrix       []FeatureMatrixItem  `json:"featureMatrix"`
	CibilHealthAnalysis *CIBILHealthAnalysis `json:"cibilHealthAnalysis,omitempty"`
}

type GovernmentScheme struct {
	Name                   Text   `json:"name"`
	Description            Text   `json:"description"`
	InterestRateComparison Text   `json:"interestRateComparison"`
	Eligibility            []Text `json:"eligibility"`
	ApplicationGuidance    Text   `json:"applicationGuidance"`
}
