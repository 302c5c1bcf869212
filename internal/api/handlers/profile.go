// internal/api/handlers/profile.go
package handlers

import (
	"fmt"
	"io"
	"net/http"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const maxResumeUpload = 5 << 20 // request-side cap, matches the service

// ProfileHandler holds dependencies for the caller's own account data.
type ProfileHandler struct {
	service   services.ProfileService
	validator *validator.Validate
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(service services.ProfileService, validate *validator.Validate) *ProfileHandler {
	return &ProfileHandler{
		service:   service,
		validator: validate,
	}
}

// GetProfile godoc
// @Summary      Get the caller's profile
// @Tags         profile
// @Produce      json
// @Success      200 {object}  dto.ProfileResponse "Successfully retrieved profile"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /profile [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, err, "retrieve profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetPublicProfile godoc
// @Summary      Get another user's public profile
// @Tags         profile
// @Produce      json
// @Param        userId path      string true  "User ID (UUID)"
// @Success      200 {object}  dto.PublicProfileResponse "Successfully retrieved profile"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid UUID"
// @Failure      404 {object}  map[string]string "Not Found"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /profile/public/{userId} [get]
func (h *ProfileHandler) GetPublicProfile(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	profile, err := h.service.GetPublicProfile(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, err, "retrieve public profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary      Update the caller's profile
// @Description  Applies a partial patch. Absent fields keep their values.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile body      dto.UpdateProfileRequest true  "Fields to update"
// @Success      200 {object}  dto.ProfileResponse "Profile updated"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /profile [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}
	req.UserID = userID

	profile, err := h.service.UpdateProfile(c.Request.Context(), &req)
	if err != nil {
		RespondServiceError(c, err, "update profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfilePicture godoc
// @Summary      Set the caller's profile picture
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        picture body      dto.UpdateProfilePictureRequest true  "Picture URL"
// @Success      200 {object}  dto.ProfileResponse "Profile updated"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /profile/profile-picture [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateProfilePicture(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateProfilePictureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}
	req.UserID = userID

	profile, err := h.service.UpdateProfilePicture(c.Request.Context(), &req)
	if err != nil {
		RespondServiceError(c, err, "update profile picture")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UploadResume godoc
// @Summary      Upload a resume
// @Description  Accepts a multipart upload (field "resume") of at most 5MB in PDF, DOC or DOCX format.
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume formData file true "Resume file"
// @Success      200 {object}  dto.ResumeMetadata "Resume stored"
// @Failure      400 {object}  map[string]string "Bad Request - Wrong type or too large"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /profile/resume [post]
// @Security     BearerAuth
func (h *ProfileHandler) UploadResume(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Resume file required in field 'resume'"})
		return
	}
	if fileHeader.Size > maxResumeUpload {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Resume exceeds the 5MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxResumeUpload+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return
	}

	req := dto.UploadResumeRequest{
		UserID:      userID,
		Name:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}
	meta, err := h.service.UploadResume(c.Request.Context(), &req)
	if err != nil {
		RespondServiceError(c, err, "upload resume")
		return
	}

	c.JSON(http.StatusOK, meta)
}

// DownloadResume godoc
// @Summary      Download the stored resume
// @Tags         profile
// @Produce      application/octet-stream
// @Success      200 {file}    file "Resume content"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "No resume uploaded"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /profile/resume [get]
// @Security     BearerAuth
func (h *ProfileHandler) DownloadResume(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resume, err := h.service.GetResume(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, err, "download resume")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resume.Name))
	c.Data(http.StatusOK, resume.ContentType, resume.Data)
}

// DeleteResume godoc
// @Summary      Delete the stored resume
// @Tags         profile
// @Produce      json
// @Success      200 {object}  map[string]string "Resume deleted"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "No resume uploaded"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /profile/resume [delete]
// @Security     BearerAuth
func (h *ProfileHandler) DeleteResume(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.service.DeleteResume(c.Request.Context(), userID); err != nil {
		RespondServiceError(c, err, "delete resume")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Resume deleted successfully"})
}

// ChangePassword godoc
// @Summary      Change the caller's password
// @Description  Verifies the current password, stores the new one and ends every session.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        passwords body      dto.ChangePasswordRequest true  "Current and new password"
// @Success      200 {object}  map[string]string "Password changed"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized - Wrong current password"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /profile/password [put]
// @Security     BearerAuth
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}
	req.UserID = userID

	if err := h.service.ChangePassword(c.Request.Context(), &req); err != nil {
		RespondServiceError(c, err, "change password")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// DeleteAccount godoc
// @Summary      Delete the caller's account
// @Description  Confirms with the password and removes the account. Posters must close out Draft and Published jobs first.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        confirmation body      dto.DeleteAccountRequest true  "Password confirmation"
// @Success      200 {object}  map[string]string "Account deleted"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized - Wrong password"
// @Failure      409 {object}  map[string]string "Conflict - Live jobs remain"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /profile [delete]
// @Security     BearerAuth
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}
	req.UserID = userID

	if err := h.service.DeleteAccount(c.Request.Context(), &req); err != nil {
		RespondServiceError(c, err, "delete account")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}
