package handlers

import (
	"net/http"

	"loanguard/services/share"
	"loanguard/views"

	"github.com/gin-gonic/gin"
)

const msgNothingToShare = "There is no result to share yet."

// shareOrRedirect answers with {url}, or redirects to it when ?redirect=1.
func shareOrRedirect(c *gin.Context, url string) {
	if c.Query("redirect") == "1" {
		c.Redirect(http.StatusFound, url)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *LoanHandler) ShareAnalysis(c *gin.Context) {
	state, ok := h.load(c)
	if !ok {
		return
	}
	if state.Analyzer.Result == nil {
		respondError(c, http.StatusNotFound, msgNothingToShare)
		return
	}
	shareOrRedirect(c, share.AnalysisShareURL(state.Analyzer.Result))
}

func (h *LoanHandler) ShareComparison(c *gin.Context) {
	state, ok := h.load(c)
	if !ok {
		return
	}
	if state.Comparator.Result == nil {
		respondError(c, http.StatusNotFound, msgNothingToShare)
		return
	}
	shareOrRedirect(c, share.ComparisonShareURL(state.Comparator.Result))
}

// PrintAnalysis renders the printable summary of the last analysis.
func (h *LoanHandler) PrintAnalysis(c *gin.Context) {
	state, ok := h.load(c)
	if !ok {
		return
	}
	if state.Analyzer.Result == nil {
		respondError(c, http.StatusNotFound, "There is no analysis to print yet.")
		return
	}
	c.HTML(http.StatusOK, views.PagePrintAnalysis, views.NewPage(state, h.FAQ))
}

func (h *LoanHandler) PrintComparison(c *gin.Context) {
	state, ok := h.load(c)
	if !ok {
		return
	}
	if state.Comparator.Result == nil {
		respondError(c, http.StatusNotFound, "There is no comparison to print yet.")
		return
	}
	c.HTML(http.StatusOK, views.PagePrintComparison, views.NewPage(state, h.FAQ))
}
