package routes

import (
	"jobboard-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterSearchRoutes registers the published-job search surface. The read
// endpoints accept anonymous callers; saved searches require a session.
func RegisterSearchRoutes(rg *gin.RouterGroup, searchHandler *handlers.SearchHandler, authMiddleware, optionalAuth gin.HandlerFunc) {
	search := rg.Group("/search")
	{
		search.GET("/jobs", optionalAuth, searchHandler.SearchJobs)
		search.GET("/suggestions", searchHandler.GetSuggestions)
		search.GET("/filters", searchHandler.GetFilters)

		search.POST("/save", authMiddleware, searchHandler.SaveSearch)
		search.GET("/saved", authMiddleware, searchHandler.ListSavedSearches)
		search.DELETE("/saved/:id", authMiddleware, searchHandler.DeleteSavedSearch)
	}
}
