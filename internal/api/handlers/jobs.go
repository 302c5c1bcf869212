// internal/api/handlers/jobs.go
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

// JobHandler holds dependencies for job posting operations.
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{
		service:   service,
		validator: validate,
	}
}

// CreateJob godoc
// @Summary      Create a new job posting
// @Description  Adds a job posting owned by the caller. Poster ID is taken from auth context.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job body      dto.CreateJobRequest true  "Job details"
// @Success      201 {object}  dto.JobResponse "Job created successfully"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) CreateJob(c *gin.Context) {
	posterID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}
	req.PostedBy = posterID

	createdJob, err := h.service.CreateJob(c.Request.Context(), &req)
	if err != nil {
		RespondServiceError(c, err, "create job")
		return
	}

	c.JSON(http.StatusCreated, createdJob)
}

// GetJobByID godoc
// @Summary      Get a job by ID
// @Description  Retrieves one job and counts the read as a view.
// @Tags         jobs
// @Produce      json
// @Param        jobId path      string true  "Job ID" Format(uuid)
// @Success      200 {object}  dto.JobResponse "Successfully retrieved job"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /jobs/{jobId} [get]
func (h *JobHandler) GetJobByID(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("jobId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	req := dto.GetJobByIDRequest{ID: jobID}
	job, err := h.service.GetJobByID(c.Request.Context(), &req)
	if err != nil {
		RespondServiceError(c, err, "retrieve job")
		return
	}

	c.JSON(http.StatusOK, job)
}

// UpdateJob godoc
// @Summary      Update a job posting
// @Description  Applies a partial patch to a job the caller posted. Absent fields keep their values.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        jobId path      string true  "Job ID" Format(uuid)
// @Param        job body      dto.UpdateJobRequest true  "Fields to update"
// @Success      200 {object}  dto.JobResponse "Job updated successfully"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Not the poster"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /jobs/{jobId} [put]
// @Security     BearerAuth
func (h *JobHandler) UpdateJob(c *gin.Context) {
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

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}
	req.ID = jobID
	req.UserID = userID

	updatedJob, err := h.service.UpdateJob(c.Request.Context(), &req)
	if err != nil {
		RespondServiceError(c, err, "update job")
		return
	}

	c.JSON(http.StatusOK, updatedJob)
}

// DeleteJob godoc
// @Summary      Delete a job posting
// @Description  Removes a job the caller posted along with its applications.
// @Tags         jobs
// @Produce      json
// @Param        jobId path      string true  "Job ID" Format(uuid)
// @Success      200 {object}  map[string]string "Job deleted"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Not the poster"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /jobs/{jobId} [delete]
// @Security     BearerAuth
func (h *JobHandler) DeleteJob(c *gin.Context) {
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

	req := dto.DeleteJobRequest{ID: jobID, UserID: userID}
	if err := h.service.DeleteJob(c.Request.Context(), &req); err != nil {
		RespondServiceError(c, err, "delete job")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

// ListMyJobs godoc
// @Summary      List the caller's job postings
// @Description  Returns one page of the caller's postings in every status, newest first.
// @Tags         jobs
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(10)
// @Success      200 {object}  dto.JobListResponse "Successfully retrieved jobs"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /jobs/user/my-jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListMyJobs(c *gin.Context) {
	posterID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ListMyJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	req.PosterID = posterID

	jobs, err := h.service.ListMyJobs(c.Request.Context(), &req)
	if err != nil {
		RespondServiceError(c, err, "list jobs")
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// GetStatistics godoc
// @Summary      Summarize the caller's job postings
// @Description  Returns per-status job counts and the total applications received.
// @Tags         jobs
// @Produce      json
// @Success      200 {object}  dto.JobStatisticsResponse "Successfully retrieved statistics"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      503 {object}  map[string]string "Service Unavailable"
// @Router       /jobs/user/statistics [get]
// @Security     BearerAuth
func (h *JobHandler) GetStatistics(c *gin.Context) {
	posterID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	stats, err := h.service.GetStatistics(c.Request.Context(), posterID)
	if err != nil {
		RespondServiceError(c, err, "retrieve job statistics")
		return
	}

	c.JSON(http.StatusOK, stats)
}
