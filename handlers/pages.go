package handlers

import (
	"net/http"

	"loanguard/views"

	"github.com/gin-gonic/gin"
)

// Index renders the application, or the FAQ when that view is selected.
func (h *LoanHandler) Index(c *gin.Context) {
	state, ok := h.load(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, views.PageIndex, views.NewPage(state, h.FAQ))
}
