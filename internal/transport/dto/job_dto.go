// internal/transport/dto/job_dto.go
package dto

import (
	"time"

	"jobboard-api/internal/models"

	"github.com/google/uuid"
)

// --- Job Request DTOs ---

// CreateJobRequest defines the structure for creating a new job posting.
type CreateJobRequest struct {
	Title               string     `json:"title" validate:"required,min=3,max=100"`
	Company             string     `json:"company" validate:"required,min=2,max=100"`
	Location            string     `json:"location" validate:"required,max=100"`
	JobType             string     `json:"job_type" validate:"required,oneof=Full-time Part-time Contract Internship Freelance"`
	WorkMode            string     `json:"work_mode" validate:"required,oneof=Remote On-site Hybrid"`
	CategoryID          *uuid.UUID `json:"category_id,omitempty" validate:"omitempty"`
	Description         string     `json:"description" validate:"required,min=10,max=5000"`
	Skills              []string   `json:"skills" validate:"omitempty,dive,max=50"`
	Tags                []string   `json:"tags" validate:"omitempty,dive,max=30"`
	Requirements        []string   `json:"requirements" validate:"omitempty,dive,max=500"`
	Benefits            []string   `json:"benefits" validate:"omitempty,dive,max=500"`
	SalaryMin           *int       `json:"salary_min,omitempty" validate:"omitempty,gte=0"`
	SalaryMax           *int       `json:"salary_max,omitempty" validate:"omitempty,gte=0"`
	SalaryCurrency      string     `json:"salary_currency" validate:"omitempty,oneof=INR RS"`
	ApplicationDeadline time.Time  `json:"application_deadline" validate:"required"`
	Status              string     `json:"status" validate:"omitempty,oneof=Draft Published Closed Filled"`
	Featured            bool       `json:"featured"`
	PostedBy            uuid.UUID  `json:"-"` // Set internally by handler from auth context
}

// GetJobByIDRequest defines the structure for getting a job by ID.
type GetJobByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// UpdateJobRequest defines the structure for a partial job update.
// Fields merge verbatim; status may jump between any two values.
type UpdateJobRequest struct {
	ID                  uuid.UUID  `json:"-" validate:"required"`
	UserID              uuid.UUID  `json:"-"` // Set internally by handler
	Title               *string    `json:"title,omitempty" validate:"omitempty,min=3,max=100"`
	Company             *string    `json:"company,omitempty" validate:"omitempty,min=2,max=100"`
	Location            *string    `json:"location,omitempty" validate:"omitempty,max=100"`
	JobType             *string    `json:"job_type,omitempty" validate:"omitempty,oneof=Full-time Part-time Contract Internship Freelance"`
	WorkMode            *string    `json:"work_mode,omitempty" validate:"omitempty,oneof=Remote On-site Hybrid"`
	CategoryID          *uuid.UUID `json:"category_id,omitempty"`
	Description         *string    `json:"description,omitempty" validate:"omitempty,min=10,max=5000"`
	Skills              []string   `json:"skills,omitempty" validate:"omitempty,dive,max=50"`
	Tags                []string   `json:"tags,omitempty" validate:"omitempty,dive,max=30"`
	Requirements        []string   `json:"requirements,omitempty" validate:"omitempty,dive,max=500"`
	Benefits            []string   `json:"benefits,omitempty" validate:"omitempty,dive,max=500"`
	SalaryMin           *int       `json:"salary_min,omitempty" validate:"omitempty,gte=0"`
	SalaryMax           *int       `json:"salary_max,omitempty" validate:"omitempty,gte=0"`
	SalaryCurrency      *string    `json:"salary_currency,omitempty" validate:"omitempty,oneof=INR RS"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	Status              *string    `json:"status,omitempty" validate:"omitempty,oneof=Draft Published Closed Filled"`
	Featured            *bool      `json:"featured,omitempty"`
}

// DeleteJobRequest defines the structure for deleting a job.
type DeleteJobRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"`
	UserID uuid.UUID `json:"-"`
}

// ListMyJobsRequest defines pagination for the poster's own jobs.
type ListMyJobsRequest struct {
	PosterID uuid.UUID `json:"-"`
	Page     int       `form:"page,default=1" validate:"omitempty,gte=1"`
	Limit    int       `form:"limit,default=10" validate:"omitempty,gte=1,lte=100"`
}

// JobResponse defines the standard job data returned to the client.
type JobResponse struct {
	ID                  uuid.UUID                `json:"id"`
	Title               string                   `json:"title"`
	Company             string                   `json:"company"`
	Location            string                   `json:"location"`
	JobType             models.JobType           `json:"job_type"`
	WorkMode            models.WorkMode          `json:"work_mode"`
	CategoryID          *uuid.UUID               `json:"category_id,omitempty"`
	Description         string                   `json:"description"`
	Skills              []string                 `json:"skills"`
	Tags                []string                 `json:"tags"`
	Requirements        []string                 `json:"requirements"`
	Benefits            []string                 `json:"benefits"`
	SalaryMin           *int                     `json:"salary_min,omitempty"`
	SalaryMax           *int                     `json:"salary_max,omitempty"`
	SalaryCurrency      string                   `json:"salary_currency"`
	ApplicationDeadline time.Time                `json:"application_deadline"`
	Status              models.JobStatus         `json:"status"`
	PostedBy            uuid.UUID                `json:"posted_by"`
	ViewCount           int                      `json:"view_count"`
	Featured            bool                     `json:"featured"`
	ApplicationCount    int                      `json:"application_count"`
	CreatedAt           time.Time                `json:"created_at"`
	UpdatedAt           time.Time                `json:"updated_at"`
}

// Pagination is the shared page descriptor for list responses.
type Pagination struct {
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	Total       int  `json:"total"`
	HasNext     bool `json:"has_next"`
	HasPrev     bool `json:"has_prev"`
}

// JobListResponse is a page of jobs.
type JobListResponse struct {
	Jobs       []JobResponse `json:"jobs"`
	Pagination Pagination    `json:"pagination"`
}

// JobStatisticsResponse summarizes a poster's jobs.
type JobStatisticsResponse struct {
	TotalJobs         int `json:"total_jobs"`
	PublishedJobs     int `json:"published_jobs"`
	DraftJobs         int `json:"draft_jobs"`
	ClosedJobs        int `json:"closed_jobs"`
	FilledJobs        int `json:"filled_jobs"`
	TotalApplications int `json:"total_applications"`
}
