// internal/api/handlers/applications.go
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

// ApplicationHandler holds dependencies for job application operations.
type ApplicationHandler struct {
	service   services.ApplicationService
	validator *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(service services.ApplicationService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{
		service:   service,
		validator: validate,
	}
}

// ApplyToJob godoc
// @Summary      Apply to a job
// @Description  Submits an application to a published job. One application per job per user.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        jobId path      string true  "Job ID" Format(uuid)
// @Param        application body      dto.ApplyToJobRequest true  "Application details"
// @Success      201 {object}  dto.ApplicationResponse "Application submitted"
// @Failure      400 {object}  map[string]string "Bad Request - Closed job or past deadline"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Own job"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      409 {object}  map[string]string "Conflict - Already applied"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /jobs/{jobId}/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) ApplyToJob(c *gin.Context) {
	applicantID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	jobID, err := uuid.Parse(c.Param("jobId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	var req dto.ApplyToJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}
	req.JobID = jobID
	req.ApplicantID = applicantID

	application, err := h.service.ApplyToJob(c.Request.Context(), &req)
	if err != nil {
		RespondServiceError(c, err, "apply to job")
		return
	}

	metrics.ApplicationsSubmitted.Inc()
	c.JSON(http.StatusCreated, application)
}

// ListJobApplications godoc
// @Summary      List a job's applications
// @Description  Returns every application for a job the caller posted, newest first.
// @Tags         applications
// @Produce      json
// @Param        jobId path      string true  "Job ID" Format(uuid)
// @Success      200 {object}  dto.JobApplicationsResponse "Successfully retrieved applications"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Not the poster"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /jobs/{jobId}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
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

	req := dto.ListJobApplicationsRequest{JobID: jobID, UserID: userID}
	applications, err := h.service.ListJobApplications(c.Request.Context(), &req)
	if err != nil {
		RespondServiceError(c, err, "list applications")
		return
	}

	c.JSON(http.StatusOK, applications)
}

// UpdateApplicationStatus godoc
// @Summary      Update an application's status
// @Description  Sets a new status label on an application of a job the caller posted. Any label may follow any other.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        jobId path      string true  "Job ID" Format(uuid)
// @Param        applicationId path      string true  "Application ID" Format(uuid)
// @Param        status body      dto.UpdateApplicationStatusRequest true  "New status"
// @Success      200 {object}  dto.ApplicationResponse "Status updated"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Not the poster"
// @Failure      404 {object}  map[string]string "Job or Application Not Found"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /jobs/{jobId}/applications/{applicationId}/status [put]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
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
	applicationID, err := uuid.Parse(c.Param("applicationId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}
	req.JobID = jobID
	req.ApplicationID = applicationID
	req.UserID = userID

	application, err := h.service.UpdateApplicationStatus(c.Request.Context(), &req)
	if err != nil {
		RespondServiceError(c, err, "update application status")
		return
	}

	c.JSON(http.StatusOK, application)
}

// ListMyApplications godoc
// @Summary      List the caller's applications
// @Description  Returns one page of the caller's own applications with job summaries, newest first.
// @Tags         applications
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(10)
// @Success      200 {object}  dto.MyApplicationsResponse "Successfully retrieved applications"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /jobs/user/my-applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	applicantID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ListMyApplicationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	req.ApplicantID = applicantID

	applications, err := h.service.ListMyApplications(c.Request.Context(), &req)
	if err != nil {
		RespondServiceError(c, err, "list applications")
		return
	}

	c.JSON(http.StatusOK, applications)
}
