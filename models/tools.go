package models

type Tool string

const (
	ToolAnalyzer   Tool = "analyzer"
	ToolComparator Tool = "comparator"
	ToolSchemes    Tool = "schemes"
	ToolDashboard  Tool = "dashboard"
)

type View string

const (
	ViewApp View = "app"
	ViewFAQ View = "faq"
)

// ToolInfo describes an entry of the tool switcher.
type ToolInfo struct {
	ID          Tool   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var Tools = []ToolInfo{
	{ID: ToolAnalyzer, Name: "Loan Safety Analyzer", Description: "Check a single loan for red flags"},
	{ID: ToolComparator, Name: "Loan Comparison Engine", Description: "Compare two loan offers side-by-side"},
	{ID: ToolSchemes, Name: "Govt. Scheme Checker", Description: "Find relevant government schemes"},
	{ID: ToolDashboard, Name: "My Dashboard", Description: "Manage your profile and documents"},
}

func (t Tool) Valid() bool {
	for _, info := range Tools {
		if info.ID == t {
			return true
		}
	}
	return false
}

func (v View) Valid() bool {
	return v == ViewApp || v == ViewFAQ
}
