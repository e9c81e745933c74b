// File: loanguard/handlers/loan.go
package handlers

import (
	"context"
	"net/http"
	"strings"

	"loanguard/metrics"
	"loanguard/middleware"
	"loanguard/models"
	"loanguard/services/faq"
	"loanguard/services/intelligence"
	"loanguard/services/session"
	"loanguard/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

const msgSessionUnavailable = "Your session could not be loaded. Please try again."

// LoanHandler serves the pages and the JSON/form API on top of one session
// store and one advisor.
type LoanHandler struct {
	Advisor intelligence.LoanAdvisor
	Store   session.Store
	FAQ     []faq.Category
}

func NewLoanHandler(advisor intelligence.LoanAdvisor, store session.Store, categories []faq.Category) *LoanHandler {
	return &LoanHandler{Advisor: advisor, Store: store, FAQ: categories}
}

// isFormPost reports whether the request came from an HTML form of the app.
// API clients posting forms opt out with "Accept: application/json".
func isFormPost(c *gin.Context) bool {
	switch c.ContentType() {
	case binding.MIMEPOSTForm, binding.MIMEMultipartPOSTForm:
		return !strings.Contains(c.GetHeader("Accept"), binding.MIMEJSON)
	}
	return false
}

// respond answers form posts with a redirect to the application page and API
// calls with payload as JSON.
func respond(c *gin.Context, status int, payload any) {
	if isFormPost(c) {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	c.JSON(status, payload)
}

// respondError does the same for failures. The message is already stored in
// the session for the HTML app to show.
func respondError(c *gin.Context, status int, message string) {
	if isFormPost(c) {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	utils.JSONError(c, status, message, "")
}

// load reads the caller's session. On failure the response is written and ok
// is false.
func (h *LoanHandler) load(c *gin.Context) (models.AppState, bool) {
	state, err := h.Store.Get(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		metrics.SessionStoreErrors.WithLabelValues("get").Inc()
		getLogger(c).Error("Failed to load session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, msgSessionUnavailable, "")
		return state, false
	}
	return state, true
}

// update applies fn to the caller's session. Writes that follow a remote call
// use a context detached from the request so that a client disconnecting
// mid-call still leaves the outcome in the session.
func (h *LoanHandler) update(ctx context.Context, c *gin.Context, fn session.UpdateFunc) (models.AppState, bool) {
	state, err := h.Store.Update(ctx, middleware.SessionID(c), fn)
	if err != nil {
		metrics.SessionStoreErrors.WithLabelValues("update").Inc()
		getLogger(c).Error("Failed to update session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, msgSessionUnavailable, "")
		return state, false
	}
	return state, true
}
