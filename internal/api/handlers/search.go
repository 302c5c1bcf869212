// internal/api/handlers/search.go
package handlers

import (
	"net/http"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/metrics"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SearchHandler holds dependencies for published-job search operations.
type SearchHandler struct {
	service   services.SearchService
	validator *validator.Validate
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(service services.SearchService, validate *validator.Validate) *SearchHandler {
	return &SearchHandler{
		service:   service,
		validator: validate,
	}
}

// SearchJobs godoc
// @Summary      Search published jobs
// @Description  Full-text search over published jobs with filters. Authenticated callers never see their own postings.
// @Tags         search
// @Produce      json
// @Param        q query string false "Free-text query"
// @Param        category query string false "Category ID" Format(uuid)
// @Param        location query string false "Location substring"
// @Param        jobType query string false "Job type" Enums(Full-time, Part-time, Contract, Internship, Freelance)
// @Param        workMode query string false "Work mode" Enums(On-site, Remote, Hybrid)
// @Param        company query string false "Company substring"
// @Param        minSalary query int false "Lower salary bound"
// @Param        maxSalary query int false "Upper salary bound"
// @Param        skills query string false "Comma-separated skills"
// @Param        tags query string false "Comma-separated tags"
// @Param        datePosted query string false "Recency window" Enums(today, week, month)
// @Param        sortBy query string false "Sort order" Enums(relevance, date, salary)
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(10)
// @Success      200 {object}  dto.SearchJobsResponse "Successfully retrieved results"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid query parameters"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /search/jobs [get]
func (h *SearchHandler) SearchJobs(c *gin.Context) {
	var req dto.SearchJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	// Anonymous searches see everything; authenticated posters skip their
	// own listings.
	var callerID *uuid.UUID
	if userID, err := middleware.GetUserIDFromContext(c); err == nil {
		callerID = &userID
	}

	results, err := h.service.SearchJobs(c.Request.Context(), &req, callerID)
	if err != nil {
		RespondServiceError(c, err, "search jobs")
		return
	}

	metrics.SearchesTotal.Inc()
	c.JSON(http.StatusOK, results)
}

// GetSuggestions godoc
// @Summary      Type-ahead suggestions
// @Description  Returns completions for the prefix drawn from published job titles, companies, skills and locations.
// @Tags         search
// @Produce      json
// @Param        q query string false "Prefix (shorter than 2 characters yields no suggestions)"
// @Param        limit query int false "Maximum suggestions" default(8)
// @Success      200 {object}  dto.SuggestionsResponse "Successfully retrieved suggestions"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid query parameters"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /search/suggestions [get]
func (h *SearchHandler) GetSuggestions(c *gin.Context) {
	var req dto.SuggestionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	suggestions, err := h.service.GetSuggestions(c.Request.Context(), &req)
	if err != nil {
		RespondServiceError(c, err, "fetch suggestions")
		return
	}

	c.JSON(http.StatusOK, suggestions)
}

// GetFilters godoc
// @Summary      Available search facets
// @Description  Enumerates the categories, job types, work modes, locations and companies present across published jobs.
// @Tags         search
// @Produce      json
// @Success      200 {object}  dto.SearchFiltersResponse "Successfully retrieved facets"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /search/filters [get]
func (h *SearchHandler) GetFilters(c *gin.Context) {
	filters, err := h.service.GetFilters(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err, "fetch search filters")
		return
	}

	c.JSON(http.StatusOK, filters)
}

// SaveSearch godoc
// @Summary      Save a search
// @Description  Stores the filter set under a name for the caller.
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        search body      dto.SaveSearchRequest true  "Named search"
// @Success      201 {object}  dto.SavedSearchResponse "Search saved"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      409 {object}  map[string]string "Conflict - Name already used"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /search/save [post]
// @Security     BearerAuth
func (h *SearchHandler) SaveSearch(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.SaveSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}
	req.UserID = userID

	saved, err := h.service.SaveSearch(c.Request.Context(), &req)
	if err != nil {
		RespondServiceError(c, err, "save search")
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// ListSavedSearches godoc
// @Summary      List saved searches
// @Tags         search
// @Produce      json
// @Success      200 {array}   dto.SavedSearchResponse "Successfully retrieved saved searches"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /search/saved [get]
// @Security     BearerAuth
func (h *SearchHandler) ListSavedSearches(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	searches, err := h.service.ListSavedSearches(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, err, "list saved searches")
		return
	}

	c.JSON(http.StatusOK, searches)
}

// DeleteSavedSearch godoc
// @Summary      Delete a saved search
// @Tags         search
// @Produce      json
// @Param        id path      string true  "Saved search ID" Format(uuid)
// @Success      200 {object}  map[string]string "Saved search deleted"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Saved search Not Found"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /search/saved/{id} [delete]
// @Security     BearerAuth
func (h *SearchHandler) DeleteSavedSearch(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid saved search ID format"})
		return
	}

	if err := h.service.DeleteSavedSearch(c.Request.Context(), userID, id); err != nil {
		RespondServiceError(c, err, "delete saved search")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Saved search deleted successfully"})
}
