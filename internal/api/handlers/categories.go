// internal/api/handlers/categories.go
package handlers

import (
	"net/http"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CategoryHandler holds dependencies for category operations.
type CategoryHandler struct {
	service   services.CategoryService
	validator *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service services.CategoryService, validate *validator.Validate) *CategoryHandler {
	return &CategoryHandler{
		service:   service,
		validator: validate,
	}
}

// CreateCategory godoc
// @Summary      Create a category
// @Description  Adds a new job category owned by the caller. Names are unique.
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        category body      dto.CreateCategoryRequest true  "Category details"
// @Success      201 {object}  dto.CategoryResponse "Category created"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      409 {object}  map[string]string "Conflict - Name already exists"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /categories [post]
// @Security     BearerAuth
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}
	req.CreatedBy = userID

	category, err := h.service.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		RespondServiceError(c, err, "create category")
		return
	}

	c.JSON(http.StatusCreated, category)
}

// GetCategories godoc
// @Summary      List categories
// @Description  Returns every category, active first.
// @Tags         categories
// @Produce      json
// @Success      200 {array}   dto.CategoryResponse "Successfully retrieved categories"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.service.GetCategories(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err, "list categories")
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GetCategoryByID godoc
// @Summary      Get a category by ID
// @Tags         categories
// @Produce      json
// @Param        id path      string true  "Category ID" Format(uuid)
// @Success      200 {object}  dto.CategoryResponse "Successfully retrieved category"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      404 {object}  map[string]string "Category Not Found"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /categories/{id} [get]
func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID format"})
		return
	}

	category, err := h.service.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err, "retrieve category")
		return
	}

	c.JSON(http.StatusOK, category)
}

// UpdateCategory godoc
// @Summary      Update a category
// @Description  Patches a category the caller created. Admins may patch any category.
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Category ID" Format(uuid)
// @Param        category body      dto.UpdateCategoryRequest true  "Fields to update"
// @Success      200 {object}  dto.CategoryResponse "Category updated"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Not the creator"
// @Failure      404 {object}  map[string]string "Category Not Found"
// @Failure      409 {object}  map[string]string "Conflict - Name already exists"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /categories/{id} [put]
// @Security     BearerAuth
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID format"})
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}
	req.ID = id
	req.UserID = userID
	req.UserRole = role

	category, err := h.service.UpdateCategory(c.Request.Context(), &req)
	if err != nil {
		RespondServiceError(c, err, "update category")
		return
	}

	c.JSON(http.StatusOK, category)
}

// DeleteCategory godoc
// @Summary      Delete a category
// @Description  Removes a category once none of its jobs are Draft or Published.
// @Tags         categories
// @Produce      json
// @Param        id path      string true  "Category ID" Format(uuid)
// @Success      200 {object}  map[string]string "Category deleted"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Not the creator"
// @Failure      404 {object}  map[string]string "Category Not Found"
// @Failure      409 {object}  map[string]string "Conflict - Live jobs still use this category"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /categories/{id} [delete]
// @Security     BearerAuth
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID format"})
		return
	}

	req := dto.DeleteCategoryRequest{ID: id, UserID: userID, UserRole: role}
	if err := h.service.DeleteCategory(c.Request.Context(), &req); err != nil {
		RespondServiceError(c, err, "delete category")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

// RefreshJobCount godoc
// @Summary      Refresh a category's job count
// @Description  Recomputes the cached published-job count from the jobs table.
// @Tags         categories
// @Produce      json
// @Param        id path      string true  "Category ID" Format(uuid)
// @Success      200 {object}  dto.CategoryResponse "Count refreshed"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Category Not Found"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /categories/{id}/update-count [post]
// @Security     BearerAuth
func (h *CategoryHandler) RefreshJobCount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID format"})
		return
	}

	category, err := h.service.RefreshJobCount(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err, "refresh category job count")
		return
	}

	c.JSON(http.StatusOK, category)
}

// callerIdentity pulls the authenticated user ID and role, answering 401
// itself when either is missing.
func callerIdentity(c *gin.Context) (uuid.UUID, string, bool) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return uuid.Nil, "", false
	}
	role, err := middleware.GetUserRoleFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return uuid.Nil, "", false
	}
	return userID, string(role), true
}
