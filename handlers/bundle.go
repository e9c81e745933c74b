// File: loanguard/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Pages
	IndexHandler           gin.HandlerFunc
	PrintAnalysisHandler   gin.HandlerFunc
	PrintComparisonHandler gin.HandlerFunc

	// Session state endpoints
	GetStateHandler      gin.HandlerFunc
	UpdateProfileHandler gin.HandlerFunc
	SelectToolHandler    gin.HandlerFunc
	SelectViewHandler    gin.HandlerFunc
	UploadReportHandler  gin.HandlerFunc
	ClearReportHandler   gin.HandlerFunc

	// Analysis endpoints
	AnalyzeHandler      gin.HandlerFunc
	CompareHandler      gin.HandlerFunc
	CheckSchemesHandler gin.HandlerFunc

	// Sharing
	ShareAnalysisHandler   gin.HandlerFunc
	ShareComparisonHandler gin.HandlerFunc

	// Static content
	GetOptionsHandler  gin.HandlerFunc
	GetExamplesHandler gin.HandlerFunc
	GetFAQHandler      gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle wires every endpoint of h into a bundle.
func NewHandlerBundle(h *LoanHandler) *HandlerBundle {
	return &HandlerBundle{
		IndexHandler:           h.Index,
		PrintAnalysisHandler:   h.PrintAnalysis,
		PrintComparisonHandler: h.PrintComparison,

		GetStateHandler:      h.GetState,
		UpdateProfileHandler: h.UpdateProfile,
		SelectToolHandler:    h.SelectTool,
		SelectViewHandler:    h.SelectView,
		UploadReportHandler:  h.UploadReport,
		ClearReportHandler:   h.ClearReport,

		AnalyzeHandler:      h.Analyze,
		CompareHandler:      h.Compare,
		CheckSchemesHandler: h.CheckSchemes,

		ShareAnalysisHandler:   h.ShareAnalysis,
		ShareComparisonHandler: h.ShareComparison,

		GetOptionsHandler:  h.GetOptions,
		GetExamplesHandler: h.GetExamples,
		GetFAQHandler:      h.GetFAQ,

		HealthHandler: HealthHandler,
	}
}
