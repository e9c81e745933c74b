package routes

import (
	"net/http"
	"time"

	"loanguard/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterPageRoutes registers the server-rendered pages.
func RegisterPageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.IndexHandler)
	r.GET("/print/analysis", hb.PrintAnalysisHandler)
	r.GET("/print/comparison", hb.PrintComparisonHandler)
}

// RegisterSessionRoutes registers the endpoints that read or change the
// caller's session state. Mutations accept PUT from API clients and POST from
// the HTML forms.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/state", hb.GetStateHandler)
		api.PUT("/profile", hb.UpdateProfileHandler)
		api.POST("/profile", hb.UpdateProfileHandler)
		api.PUT("/tool", hb.SelectToolHandler)
		api.POST("/tool", hb.SelectToolHandler)
		api.PUT("/view", hb.SelectViewHandler)
		api.POST("/view", hb.SelectViewHandler)

		api.POST("/report", hb.UploadReportHandler)
		api.DELETE("/report", hb.ClearReportHandler)
		api.POST("/report/clear", hb.ClearReportHandler)
	}
}

// RegisterAnalysisRoutes registers the three analysis tools and sharing.
func RegisterAnalysisRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/analyze", hb.AnalyzeHandler)
		api.POST("/compare", hb.CompareHandler)
		api.POST("/schemes", hb.CheckSchemesHandler)

		api.GET("/share/analysis", hb.ShareAnalysisHandler)
		api.GET("/share/comparison", hb.ShareComparisonHandler)
	}
}

// RegisterContentRoutes registers the static lookups.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/options", hb.GetOptionsHandler)
		api.GET("/examples", hb.GetExamplesHandler)
		api.GET("/faq", hb.GetFAQHandler)
	}
}

// RegisterHealthRoute registers the health-check and metrics endpoints.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterPageRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterAnalysisRoutes(r, hb)
	RegisterContentRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
