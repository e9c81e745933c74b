package models

// LoanExample pre-fills the analyzer with a sample agreement.
type LoanExample struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Text        string `json:"text"`
}

// ComparisonExample pre-fills both offers of the comparator.
type ComparisonExample struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	OfferA      string `json:"offerA"`
	OfferB      string `json:"offerB"`
}

var LoanExamples = []LoanExample{
	{
		Title:       "Example: Predatory Loan",
		Description: "High fees and unfavorable terms. See how the AI flags these issues.",
		Text: "Interest Rate: 28% (Flat Rate)\n" +
			"Processing Fee: 5% of loan amount + 18% GST\n" +
			"Prepayment Penalty: 6% on the entire initial principal if closed before 3 years.\n" +
			"Mandatory: You must purchase a life insurance policy from our partner company, premiums will be added to EMI.\n" +
			"Late Fee: ₹1500 + 3% of EMI amount per month.",
	},
	{
		Title:       "Example: Good Loan Offer",
		Description: "Competitive terms with borrower-friendly features.",
		Text: "Interest Rate: 11.5% (Reducing Balance)\n" +
			"Processing Fee: ₹1,999 + GST (Special Offer)\n" +
			"Prepayment Penalty: 0% (Nil) on early closure after 12 EMIs.\n" +
			"Late Fee: 2% of overdue EMI amount.\n" +
			"No requirement for linked insurance.",
	},
	{
		Title:       "Example: Standard Car Loan",
		Description: "A typical offer for a vehicle loan with standard clauses.",
		Text: "Interest Rate: 13% p.a. (Reducing)\n" +
			"Loan Amount: ₹8,00,000\n" +
			"Tenure: 5 years\n" +
			"Processing Fee: 1.5% of the loan amount.\n" +
			"Foreclosure Charges: 3% on the outstanding principal if closed within the first 2 years, 2% thereafter.",
	},
}

var ComparisonExamples = []ComparisonExample{
	{
		Title:       "Low Interest vs. Zero Fees",
		Description: "One offer has a lower rate but high fees, the other has a slightly higher rate but no processing fee.",
		OfferA:      "Bank A Personal Loan\nInterest Rate: 11.99% (Reducing)\nProcessing Fee: 2% of loan amount + GST",
		OfferB:      "Bank B Personal Loan\nInterest Rate: 12.75% (Reducing)\nProcessing Fee: ₹0 (Zero Fee Festival Offer)",
	},
	{
		Title:       "Flexibility vs. Low EMI",
		Description: "Compare an offer with no prepayment penalty against one with a lower EMI but strict foreclosure charges.",
		OfferA:      "Flexible Loan Corp\nInterest Rate: 14% (Reducing)\nPrepayment Penalty: 0% after 6 EMIs.\nLate Fee: 2% of EMI.",
		OfferB:      "Budget Loans Ltd.\nInterest Rate: 13.5% (Reducing)\nPrepayment Penalty: 5% on outstanding principal for entire tenure.\nLate Fee: ₹1000 flat.",
	},
	{
		Title:       "Bank vs. NBFC",
		Description: "A standard bank offer versus a quicker, but more expensive, Non-Banking Financial Company (NBFC) loan.",
		OfferA:      "National Bank Car Loan\nInterest Rate: 9.5% (Reducing)\nProcessing Fee: 1%\nRequires extensive documentation.",
		OfferB:      "SpeedyFinance Car Loan\nInterest Rate: 15% (Flat Rate)\nProcessing Fee: 2.5%\nInstant approval with minimal documents.",
	},
}

// Examples bundles both example sets for the API.
type Examples struct {
	Analyzer   []LoanExample       `json:"analyzer"`
	Comparator []ComparisonExample `json:"comparator"`
}

func AllExamples() Examples {
	return Examples{Analyzer: LoanExamples, Comparator: ComparisonExamples}
}
