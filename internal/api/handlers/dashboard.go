// internal/api/handlers/dashboard.go
package handlers

import (
	"net/http"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DashboardHandler holds dependencies for dashboard aggregation.
type DashboardHandler struct {
	service services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(service services.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetStats godoc
// @Summary      Dashboard statistics
// @Description  Returns the dashboard view for the caller's role: posters get their jobs and incoming applications, applicants get their own applications. Empty sections come back zeroed.
// @Tags         dashboard
// @Produce      json
// @Success      200 {object}  dto.DashboardStatsResponse "Successfully retrieved statistics"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /dashboard/stats [get]
// @Security     BearerAuth
func (h *DashboardHandler) GetStats(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	role, err := middleware.GetUserRoleFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	stats, err := h.service.GetStats(c.Request.Context(), userID, role)
	if err != nil {
		RespondServiceError(c, err, "retrieve dashboard statistics")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetJobAnalytics godoc
// @Summary      Analytics for one posted job
// @Description  Details views, applications by status and a 30 day application trend for a job the caller posted.
// @Tags         dashboard
// @Produce      json
// @Param        jobId path      string true  "Job ID" Format(uuid)
// @Success      200 {object}  dto.JobAnalyticsResponse "Successfully retrieved analytics"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Not the poster"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /dashboard/analytics/{jobId} [get]
// @Security     BearerAuth
func (h *DashboardHandler) GetJobAnalytics(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	jobID, err := uuid.Parse(c.Param("jobId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	analytics, err := h.service.GetJobAnalytics(c.Request.Context(), jobID, userID)
	if err != nil {
		RespondServiceError(c, err, "retrieve job analytics")
		return
	}

	c.JSON(http.StatusOK, analytics)
}
