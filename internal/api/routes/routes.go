// internal/api/routes/routes.go
package routes

import (
	"log"

	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/app"
	"jobboard-api/internal/metrics"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	api := router.Group("/api")

	// Create handlers
	userHandler := handlers.NewUserHandler(app.UserService, app.Validator)
	jobHandler := handlers.NewJobHandler(app.JobService, app.Validator)
	applicationHandler := handlers.NewApplicationHandler(app.ApplicationService, app.Validator)
	categoryHandler := handlers.NewCategoryHandler(app.CategoryService, app.Validator)
	searchHandler := handlers.NewSearchHandler(app.SearchService, app.Validator)
	dashboardHandler := handlers.NewDashboardHandler(app.DashboardService)
	profileHandler := handlers.NewProfileHandler(app.ProfileService, app.Validator)
	healthHandler := handlers.NewHealthHandler(app.DB)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret, app.UserService)
	optionalAuth := middleware.OptionalJWTAuthMiddleware(app.Config.JWT.Secret, app.UserService)

	// --- Register Resource Routes ---
	RegisterUserRoutes(api, userHandler, authMiddleware)
	RegisterJobRoutes(api, jobHandler, applicationHandler, searchHandler, authMiddleware, optionalAuth)
	RegisterSearchRoutes(api, searchHandler, authMiddleware, optionalAuth)
	RegisterCategoryRoutes(api, categoryHandler, authMiddleware)
	RegisterDashboardRoutes(api, dashboardHandler, authMiddleware)
	RegisterProfileRoutes(api, profileHandler, authMiddleware)

	// --- Health Check and Metrics ---
	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", metrics.Handler())

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
