// File: loanguard/models/profile.go
package models

import "fmt"

type LoanType string
type LoanTenure string
type IncomeStability string
type MonthlyIncome string
type ExistingEMIs string
type CIBILScore string

const (
	LoanTypePersonal  LoanType = "Personal Loan"
	LoanTypeHome      LoanType = "Home Loan"
	LoanTypeCar       LoanType = "Car Loan"
	LoanTypeEducation LoanType = "Education Loan"
	LoanTypeBusiness  LoanType = "Business Loan"
)

const (
	TenureThreeYears   LoanTenure = "3 years"
	TenureFiveYears    LoanTenure = "5 years"
	TenureSevenYears   LoanTenure = "7 years"
	TenureTenYears     LoanTenure = "10 years"
	TenureFifteenYears LoanTenure = "15 years"
	TenureTwentyYears  LoanTenure = "20 years"
)

const (
	IncomeSalaried             IncomeStability = "Salaried"
	IncomeSelfEmployedStable   IncomeStability = "Self-employed (Stable Income)"
	IncomeSelfEmployedVariable IncomeStability = "Self-employed (Variable Income)"
	IncomeUnemployed           IncomeStability = "Unemployed/Student"
)

const (
	IncomeLessThan30k  MonthlyIncome = "Less than ₹30,000"
	Income30kTo75k     MonthlyIncome = "₹30,000 - ₹75,000"
	Income75kTo150k    MonthlyIncome = "₹75,000 - ₹1,50,000"
	IncomeMoreThan150k MonthlyIncome = "More than ₹1,50,000"
)

const (
	EMIZero       ExistingEMIs = "0% of income"
	EMILessThan10 ExistingEMIs = "Less than 10% of income"
	EMI10To30     ExistingEMIs = "10% - 30% of income"
	EMIMoreThan30 ExistingEMIs = "More than 30% of income"
)

const (
	CIBILExcellent CIBILScore = "Excellent (750+)"
	CIBILGood      CIBILScore = "Good (700-749)"
	CIBILFair      CIBILScore = "Fair (650-699)"
	CIBILPoor      CIBILScore = "Poor (Below 650)"
	CIBILNoHistory CIBILScore = "No Credit History"
)

var (
	LoanTypes          = []LoanType{LoanTypePersonal, LoanTypeHome, LoanTypeCar, LoanTypeEducation, LoanTypeBusiness}
	LoanTenures        = []LoanTenure{TenureThreeYears, TenureFiveYears, TenureSevenYears, TenureTenYears, TenureFifteenYears, TenureTwentyYears}
	IncomeStabilities  = []IncomeStability{IncomeSalaried, IncomeSelfEmployedStable, IncomeSelfEmployedVariable, IncomeUnemployed}
	MonthlyIncomes     = []MonthlyIncome{IncomeLessThan30k, Income30kTo75k, Income75kTo150k, IncomeMoreThan150k}
	ExistingEMIOptions = []ExistingEMIs{EMIZero, EMILessThan10, EMI10To30, EMIMoreThan30}
	CIBILScores        = []CIBILScore{CIBILExcellent, CIBILGood, CIBILFair, CIBILPoor, CIBILNoHistory}
)

// UserProfile is the borrower's self-reported financial profile.
type UserProfile struct {
	LoanType        LoanType        `json:"loanType" form:"loanType"`
	LoanAmount      float64         `json:"loanAmount" form:"loanAmount"`
	LoanTenure      LoanTenure      `json:"loanTenure" form:"loanTenure"`
	IncomeStability IncomeStability `json:"incomeStability" form:"incomeStability"`
	MonthlyIncome   MonthlyIncome   `json:"monthlyIncome" form:"monthlyIncome"`
	ExistingEMIs    ExistingEMIs    `json:"existingEMIs" form:"existingEMIs"`
	CibilScore      CIBILScore      `json:"cibilScore" form:"cibilScore"`
}

// DefaultProfile is the profile a new session starts with.
func DefaultProfile() UserProfile {
	return UserProfile{
		LoanType:        LoanTypePersonal,
		LoanAmount:      500000,
		LoanTenure:      TenureFiveYears,
		IncomeStability: IncomeSalaried,
		MonthlyIncome:   Income30kTo75k,
		ExistingEMIs:    EMILessThan10,
		CibilScore:      CIBILGood,
	}
}

// CheckEnumerations reports the first field holding a value outside its
// enumeration. The loan amount is not checked here; a non-positive amount is
// only rejected when an analysis is submitted.
func (p UserProfile) CheckEnumerations() error {
	switch {
	case !contains(LoanTypes, p.LoanType):
		return fmt.Errorf("unknown loan type %q", p.LoanType)
	case !contains(LoanTenures, p.LoanTenure):
		return fmt.Errorf("unknown loan tenure %q", p.LoanTenure)
	case !contains(IncomeStabilities, p.IncomeStability):
		return fmt.Errorf("unknown income stability %q", p.IncomeStability)
	case !contains(MonthlyIncomes, p.MonthlyIncome):
		return fmt.Errorf("unknown monthly income %q", p.MonthlyIncome)
	case !contains(ExistingEMIOptions, p.ExistingEMIs):
		return fmt.Errorf("unknown existing EMI bracket %q", p.ExistingEMIs)
	case !contains(CIBILScores, p.CibilScore):
		return fmt.Errorf("unknown CIBIL score bracket %q", p.CibilScore)
	}
	return nil
}

func contains[T comparable](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// ProfileOptions lists every selectable value of the profile form.
type ProfileOptions struct {
	LoanTypes         []LoanType        `json:"loanTypes"`
	LoanTenures       []LoanTenure      `json:"loanTenures"`
	IncomeStabilities []IncomeStability `json:"incomeStabilities"`
	MonthlyIncomes    []MonthlyIncome   `json:"monthlyIncomes"`
	ExistingEMIs      []ExistingEMIs    `json:"existingEMIs"`
	CibilScores       []CIBILScore      `json:"cibilScores"`
}

func Options() ProfileOptions {
	return ProfileOptions{
		LoanTypes:         LoanTypes,
		LoanTenures:       LoanTenures,
		IncomeStabilities: IncomeStabilities,
		MonthlyIncomes:    MonthlyIncomes,
		ExistingEMIs:      ExistingEMIOptions,
		CibilScores:       CIBILScores,
	}
}
