// internal/api/handlers/users.go
package handlers

import (
	"net/http"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// UserHandler holds dependencies for account and session operations.
type UserHandler struct {
	service   services.UserService
	validator *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserService, validate *validator.Validate) *UserHandler {
	return &UserHandler{
		service:   service,
		validator: validate,
	}
}

// Signup godoc
// @Summary      Register a new account
// @Description  Creates an account and returns it with a fresh session token.
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        account body      dto.SignupRequest true  "Account details"
// @Success      201 {object}  dto.AuthResponse "Account created"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      409 {object}  map[string]string "Conflict - Email already registered"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /user/signup [post]
func (h *UserHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	resp, err := h.service.Signup(c.Request.Context(), &req)
	if err != nil {
		RespondServiceError(c, err, "sign up")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary      Log in
// @Description  Verifies credentials and returns the account with a session token.
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        credentials body      dto.LoginRequest true  "Login credentials"
// @Success      200 {object}  dto.AuthResponse "Logged in"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized - Invalid credentials"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /user/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		RespondServiceError(c, err, "log in")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary      Log out
// @Description  Invalidates the presented session token immediately. Pass all=true to end every session.
// @Tags         user
// @Produce      json
// @Param        all query bool false "Invalidate all sessions" default(false)
// @Success      200 {object}  map[string]string "Logged out"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /user/logout [post]
// @Security     BearerAuth
func (h *UserHandler) Logout(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	token, err := middleware.GetTokenFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	req := dto.LogoutRequest{
		UserID: userID,
		Token:  token,
		All:    c.Query("all") == "true",
	}
	if err := h.service.Logout(c.Request.Context(), &req); err != nil {
		RespondServiceError(c, err, "log out")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// LogoutAll godoc
// @Summary      End every session
// @Description  Invalidates all of the caller's session tokens.
// @Tags         user
// @Produce      json
// @Success      200 {object}  map[string]string "Logged out"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /user/logout-all [post]
// @Security     BearerAuth
func (h *UserHandler) LogoutAll(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	req := dto.LogoutRequest{UserID: userID, All: true}
	if err := h.service.Logout(c.Request.Context(), &req); err != nil {
		RespondServiceError(c, err, "log out")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All sessions logged out"})
}
