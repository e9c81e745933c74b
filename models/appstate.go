package models

// AnalyzerState is the Loan Safety Analyzer's input and last outcome.
type AnalyzerState struct {
	LoanText string              `json:"loanText"`
	Result   *LoanAnalysisResult `json:"result,omitempty"`
	Error    string              `json:"error,omitempty"`
	Pending  bool                `json:"pending,omitempty"`
}

type ComparatorState struct {
	OfferA  string                `json:"offerA"`
	OfferB  string                `json:"offerB"`
	Result  *LoanComparisonResult `json:"result,omitempty"`
	Error   string                `json:"error,omitempty"`
	Pending bool                  `json:"pending,omitempty"`
}

// SchemesState keeps a nil Result apart from an empty one: the latter means
// the check ran and found nothing.
type SchemesState struct {
	LoanPurpose string             `json:"loanPurpose"`
	LoanAmount  string             `json:"loanAmount"`
	Result      []GovernmentScheme `json:"result"`
	Error       string             `json:"error,omitempty"`
	Pending     bool               `json:"pending,omitempty"`
}

func (s SchemesState) Checked() bool { return s.Result != nil }

// AppState is one browser session's snapshot. Every With* method returns a
// modified copy and leaves the receiver untouched; nested results and the
// report are shared between copies and must be treated as read-only.
type AppState struct {
	Profile    UserProfile     `json:"profile"`
	Tool       Tool            `json:"tool"`
	View       View            `json:"view"`
	Report     *CIBILReport    `json:"report,omitempty"`
	Analyzer   AnalyzerState   `json:"analyzer"`
	Comparator ComparatorState `json:"comparator"`
	Schemes    SchemesState    `json:"schemes"`
}

func NewAppState() AppState {
	return AppState{
		Profile: DefaultProfile(),
		Tool:    ToolAnalyzer,
		View:    ViewApp,
	}
}

func (s AppState) WithProfile(p UserProfile) AppState {
	s.Profile = p
	return s
}

func (s AppState) WithTool(t Tool) AppState {
	s.Tool = t
	return s
}

func (s AppState) WithView(v View) AppState {
	s.View = v
	return s
}

func (s AppState) WithReport(r *CIBILReport) AppState {
	s.Report = r
	return s
}

func (s AppState) WithoutReport() AppState {
	s.Report = nil
	return s
}

// WithAnalysisInput records the pasted text and a validation message. The
// previous result stays visible.
func (s AppState) WithAnalysisInput(loanText, validationErr string) AppState {
	s.Analyzer.LoanText = loanText
	s.Analyzer.Error = validationErr
	return s
}

// BeginAnalysis clears the previous outcome and marks a call in flight.
func (s AppState) BeginAnalysis(loanText string) AppState {
	s.Analyzer = AnalyzerState{LoanText: loanText, Pending: true}
	return s
}

func (s AppState) WithAnalysis(r *LoanAnalysisResult) AppState {
	s.Analyzer.Result = r
	s.Analyzer.Error = ""
	s.Analyzer.Pending = false
	return s
}

func (s AppState) WithAnalysisError(msg string) AppState {
	s.Analyzer.Result = nil
	s.Analyzer.Error = msg
	s.Analyzer.Pending = false
	return s
}

func (s AppState) WithComparisonInput(offerA, offerB, validationErr string) AppState {
	s.Comparator.OfferA = offerA
	s.Comparator.OfferB = offerB
	s.Comparator.Error = validationErr
	return s
}

func (s AppState) BeginComparison(offerA, offerB string) AppState {
	s.Comparator = ComparatorState{OfferA: offerA, OfferB: offerB, Pending: true}
	return s
}

func (s AppState) WithComparison(r *LoanComparisonResult) AppState {
	s.Comparator.Result = r
	s.Comparator.Error = ""
	s.Comparator.Pending = false
	return s
}

func (s AppState) WithComparisonError(msg string) AppState {
	s.Comparator.Result = nil
	s.Comparator.Error = msg
	s.Comparator.Pending = false
	return s
}

func (s AppState) WithSchemesInput(purpose, amount, validationErr string) AppState {
	s.Schemes.LoanPurpose = purpose
	s.Schemes.LoanAmount = amount
	s.Schemes.Error = validationErr
	return s
}

func (s AppState) BeginSchemes(purpose, amount string) AppState {
	s.Schemes = SchemesState{LoanPurpose: purpose, LoanAmount: amount, Pending: true}
	return s
}

// WithSchemes stores a completed check. A nil list is stored as empty so the
// "nothing found" notice is shown.
func (s AppState) WithSchemes(list []GovernmentScheme) AppState {
	if list == nil {
		list = []GovernmentScheme{}
	}
	s.Schemes.Result = list
	s.Schemes.Error = ""
	s.Schemes.Pending = false
	return s
}

func (s AppState) WithSchemesError(msg string) AppState {
	s.Schemes.Result = nil
	s.Schemes.Error = msg
	s.Schemes.Pending = false
	return s
}
