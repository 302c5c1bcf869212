package routes

import (
	"jobboard-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterDashboardRoutes registers the aggregated stats routes.
func RegisterDashboardRoutes(rg *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler, authMiddleware gin.HandlerFunc) {
	dashboard := rg.Group("/dashboard")
	dashboard.Use(authMiddleware)
	{
		dashboard.GET("/stats", dashboardHandler.GetStats)
		dashboard.GET("/analytics/:jobId", dashboardHandler.GetJobAnalytics)
	}
}
