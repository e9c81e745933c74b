package handlers

import (
	"context"
	"errors"
	"net/http"

	"loanguard/models"
	"loanguard/services/intelligence"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AnalyzeRequest is the body of POST /api/analyze.
type AnalyzeRequest struct {
	LoanText string `json:"loanText" form:"loanText"`
}

// CompareRequest is the body of POST /api/compare.
type CompareRequest struct {
	OfferA string `json:"offerA" form:"offerA"`
	OfferB string `json:"offerB" form:"offerB"`
}

// SchemesRequest is the body of POST /api/schemes. The amount is kept as
// typed so that it can be shown back when it does not parse.
type SchemesRequest struct {
	LoanPurpose string `json:"loanPurpose" form:"loanPurpose"`
	LoanAmount  string `json:"loanAmount" form:"loanAmount"`
}

// statusFor maps an advisor error onto the HTTP status and the message shown
// to the user.
func statusFor(err error) (int, string) {
	var vErr *intelligence.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, vErr.Message
	}
	return http.StatusBadGateway, err.Error()
}

// Analyze runs the Loan Safety Analyzer against the session profile and any
// attached report. Validation failures keep the previous result on screen; a
// submitted request clears it until the call resolves.
func (h *LoanHandler) Analyze(c *gin.Context) {
	logger := getLogger(c)

	var req AnalyzeRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.Warn("Invalid analyze request", zap.Error(err))
		respondError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	state, ok := h.load(c)
	if !ok {
		return
	}

	if err := intelligence.ValidateAnalysisInput(req.LoanText, state.Profile); err != nil {
		status, msg := statusFor(err)
		if _, ok := h.update(c.Request.Context(), c, func(s models.AppState) models.AppState {
			return s.WithAnalysisInput(req.LoanText, msg)
		}); ok {
			respondError(c, status, msg)
		}
		return
	}
	if _, ok := h.update(c.Request.Context(), c, func(s models.AppState) models.AppState {
		return s.BeginAnalysis(req.LoanText)
	}); !ok {
		return
	}

	result, err := h.Advisor.AnalyzeLoanAgreement(c.Request.Context(), req.LoanText, state.Profile, state.Report)
	detached := context.WithoutCancel(c.Request.Context())
	if err != nil {
		status, msg := statusFor(err)
		if _, ok := h.update(detached, c, func(s models.AppState) models.AppState {
			return s.WithAnalysisError(msg)
		}); ok {
			respondError(c, status, msg)
		}
		return
	}
	if _, ok := h.update(detached, c, func(s models.AppState) models.AppState {
		return s.WithAnalysis(result)
	}); !ok {
		return
	}
	respond(c, http.StatusOK, result)
}

// Compare runs the Loan Comparison Engine on two offers.
func (h *LoanHandler) Compare(c *gin.Context) {
	logger := getLogger(c)

	var req CompareRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.Warn("Invalid compare request", zap.Error(err))
		respondError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	state, ok := h.load(c)
	if !ok {
		return
	}

	if err := intelligence.ValidateComparisonInput(req.OfferA, req.OfferB); err != nil {
		status, msg := statusFor(err)
		if _, ok := h.update(c.Request.Context(), c, func(s models.AppState) models.AppState {
			return s.WithComparisonInput(req.OfferA, req.OfferB, msg)
		}); ok {
			respondError(c, status, msg)
		}
		return
	}
	if _, ok := h.update(c.Request.Context(), c, func(s models.AppState) models.AppState {
		return s.BeginComparison(req.OfferA, req.OfferB)
	}); !ok {
		return
	}

	result, err := h.Advisor.CompareLoanOffers(c.Request.Context(), req.OfferA, req.OfferB, state.Profile, state.Report)
	detached := context.WithoutCancel(c.Request.Context())
	if err != nil {
		status, msg := statusFor(err)
		if _, ok := h.update(detached, c, func(s models.AppState) models.AppState {
			return s.WithComparisonError(msg)
		}); ok {
			respondError(c, status, msg)
		}
		return
	}
	if _, ok := h.update(detached, c, func(s models.AppState) models.AppState {
		return s.WithComparison(result)
	}); !ok {
		return
	}
	respond(c, http.StatusOK, result)
}

// CheckSchemes runs the Government Scheme Checker. Blank fields are rejected
// up front; an amount that does not parse is reported after the previous
// results were cleared.
func (h *LoanHandler) CheckSchemes(c *gin.Context) {
	logger := getLogger(c)

	var req SchemesRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.Warn("Invalid schemes request", zap.Error(err))
		respondError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := intelligence.ValidateSchemeInput(req.LoanPurpose, req.LoanAmount); err != nil {
		status, msg := statusFor(err)
		if _, ok := h.update(c.Request.Context(), c, func(s models.AppState) models.AppState {
			return s.WithSchemesInput(req.LoanPurpose, req.LoanAmount, msg)
		}); ok {
			respondError(c, status, msg)
		}
		return
	}
	if _, ok := h.update(c.Request.Context(), c, func(s models.AppState) models.AppState {
		return s.BeginSchemes(req.LoanPurpose, req.LoanAmount)
	}); !ok {
		return
	}

	schemes, err := h.Advisor.CheckGovernmentSchemes(c.Request.Context(), req.LoanPurpose, req.LoanAmount)
	detached := context.WithoutCancel(c.Request.Context())
	if err != nil {
		status, msg := statusFor(err)
		if _, ok := h.update(detached, c, func(s models.AppState) models.AppState {
			return s.WithSchemesError(msg)
		}); ok {
			respondError(c, status, msg)
		}
		return
	}
	state, ok := h.update(detached, c, func(s models.AppState) models.AppState {
		return s.WithSchemes(schemes)
	})
	if !ok {
		return
	}
	respond(c, http.StatusOK, state.Schemes.Result)
}
