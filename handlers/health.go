package handlers

import (
	"net/http"

	"loanguard/utils"
	"loanguard/views"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last snapshot taken by the health monitor.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	if !status.Healthy {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "sessionStore": status})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm " + views.AppName, "sessionStore": status})
}
