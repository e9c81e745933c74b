package handlers

import (
	"math"
	"net/http"

	"loanguard/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type reportSummary struct {
	Name     string `json:"name"`
	MIMEType string `json:"mimeType"`
	Size     int    `json:"size"`
}

func summarizeReport(r *models.CIBILReport) *reportSummary {
	if r == nil {
		return nil
	}
	return &reportSummary{Name: r.Name, MIMEType: r.MIMEType, Size: r.Size()}
}

// stateResponse is AppState with the report bytes left out.
type stateResponse struct {
	models.AppState
	Report *reportSummary `json:"report,omitempty"`
}

func newStateResponse(s models.AppState) stateResponse {
	return stateResponse{AppState: s, Report: summarizeReport(s.Report)}
}

type toolRequest struct {
	Tool models.Tool `json:"tool" form:"tool"`
}

type viewRequest struct {
	View models.View `json:"view" form:"view"`
}

// GetState returns the caller's session snapshot.
func (h *LoanHandler) GetState(c *gin.Context) {
	state, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newStateResponse(state))
}

// UpdateProfile replaces the profile. Fields missing from the body keep their
// current value; any value outside its enumeration is rejected.
func (h *LoanHandler) UpdateProfile(c *gin.Context) {
	state, ok := h.load(c)
	if !ok {
		return
	}
	profile := state.Profile
	if err := c.ShouldBind(&profile); err != nil {
		getLogger(c).Warn("Invalid profile payload", zap.Error(err))
		respondError(c, http.StatusBadRequest, "Invalid profile: "+err.Error())
		return
	}
	if math.IsNaN(profile.LoanAmount) || math.IsInf(profile.LoanAmount, 0) {
		respondError(c, http.StatusBadRequest, "Please enter a valid loan amount in your profile.")
		return
	}
	if err := profile.CheckEnumerations(); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid profile: "+err.Error())
		return
	}

	state, ok = h.update(c.Request.Context(), c, func(s models.AppState) models.AppState {
		return s.WithProfile(profile)
	})
	if !ok {
		return
	}
	respond(c, http.StatusOK, state.Profile)
}

func (h *LoanHandler) SelectTool(c *gin.Context) {
	var req toolRequest
	if err := c.ShouldBind(&req); err != nil || !req.Tool.Valid() {
		respondError(c, http.StatusBadRequest, "Unknown tool.")
		return
	}
	state, ok := h.update(c.Request.Context(), c, func(s models.AppState) models.AppState {
		return s.WithTool(req.Tool)
	})
	if !ok {
		return
	}
	respond(c, http.StatusOK, gin.H{"tool": state.Tool})
}

func (h *LoanHandler) SelectView(c *gin.Context) {
	var req viewRequest
	if err := c.ShouldBind(&req); err != nil || !req.View.Valid() {
		respondError(c, http.StatusBadRequest, "Unknown view.")
		return
	}
	state, ok := h.update(c.Request.Context(), c, func(s models.AppState) models.AppState {
		return s.WithView(req.View)
	})
	if !ok {
		return
	}
	respond(c, http.StatusOK, gin.H{"view": state.View})
}

func (h *LoanHandler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"profile": models.Options(),
		"tools":   models.Tools,
	})
}

func (h *LoanHandler) GetExamples(c *gin.Context) {
	c.JSON(http.StatusOK, models.AllExamples())
}

func (h *LoanHandler) GetFAQ(c *gin.Context) {
	c.JSON(http.StatusOK, h.FAQ)
}
