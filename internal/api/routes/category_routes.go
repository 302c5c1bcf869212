package routes

import (
	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes registers category routes. Reads are public;
// mutations are admin-only.
func RegisterCategoryRoutes(rg *gin.RouterGroup, categoryHandler *handlers.CategoryHandler, authMiddleware gin.HandlerFunc) {
	categories := rg.Group("/categories")
	{
		categories.GET("", categoryHandler.GetCategories)
		categories.GET("/:id", categoryHandler.GetCategoryByID)

		categories.POST("", authMiddleware, middleware.RequireAdmin(), categoryHandler.CreateCategory)
		categories.PUT("/:id", authMiddleware, middleware.RequireAdmin(), categoryHandler.UpdateCategory)
		categories.DELETE("/:id", authMiddleware, middleware.RequireAdmin(), categoryHandler.DeleteCategory)
		categories.PUT("/:id/update-count", authMiddleware, middleware.RequireAdmin(), categoryHandler.RefreshJobCount)
	}
}
