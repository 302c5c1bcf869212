package routes

import (
	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers job CRUD, application and per-user job routes.
// Job mutations are admin-only; applying is for regular users. The public
// listing shares the search predicate surface and only uses auth to exclude
// the caller's own postings.
func RegisterJobRoutes(
	rg *gin.RouterGroup,
	jobHandler *handlers.JobHandler,
	applicationHandler *handlers.ApplicationHandler,
	searchHandler *handlers.SearchHandler,
	authMiddleware gin.HandlerFunc,
	optionalAuth gin.HandlerFunc,
) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", optionalAuth, searchHandler.SearchJobs)
		jobs.GET("/:jobId", optionalAuth, jobHandler.GetJobByID)

		jobs.POST("", authMiddleware, middleware.RequireAdmin(), jobHandler.CreateJob)
		jobs.PUT("/:jobId", authMiddleware, middleware.RequireAdmin(), jobHandler.UpdateJob)
		jobs.DELETE("/:jobId", authMiddleware, middleware.RequireAdmin(), jobHandler.DeleteJob)

		jobs.POST("/:jobId/apply", authMiddleware, middleware.RequireUser(), applicationHandler.ApplyToJob)
		jobs.GET("/:jobId/applications", authMiddleware, middleware.RequireAdmin(), applicationHandler.ListJobApplications)
		jobs.PUT("/:jobId/applications/:applicationId/status", authMiddleware, middleware.RequireAdmin(), applicationHandler.UpdateApplicationStatus)

		user := jobs.Group("/user")
		user.Use(authMiddleware)
		{
			user.GET("/my-jobs", middleware.RequireAdmin(), jobHandler.ListMyJobs)
			user.GET("/my-applications", middleware.RequireUser(), applicationHandler.ListMyApplications)
			user.GET("/statistics", jobHandler.GetStatistics)
		}
	}
}
