package views

import (
	"embed"
	"html/template"
	"time"

	"loanguard/models"
	"loanguard/services/faq"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	AppName    = "LoanGuard AI"
	AppTagline = "Your AI-powered shield against predatory loans in India."
)

// Page names registered with the gin renderer.
const (
	PageIndex           = "index.html"
	PagePrintAnalysis   = "print_analysis.html"
	PagePrintComparison = "print_comparison.html"
)

// Load parses every embedded template with the view helpers.
func Load() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.html")
}

// Page is the data every full page renders from.
type Page struct {
	AppName    string
	AppTagline string
	State      models.AppState
	Options    models.ProfileOptions
	Tools      []models.ToolInfo
	Examples   models.Examples
	FAQ        []faq.Category
	Year       int
}

func NewPage(state models.AppState, categories []faq.Category) Page {
	return Page{
		AppName:    AppName,
		AppTagline: AppTagline,
		State:      state,
		Options:    models.Options(),
		Tools:      models.Tools,
		Examples:   models.AllExamples(),
		FAQ:        categories,
		Year:       time.Now().Year(),
	}
}
