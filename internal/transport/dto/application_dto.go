package dto

import (
	"time"

	"jobboard-api/internal/models"

	"github.com/google/uuid"
)

// ApplyToJobRequest defines the structure for applying to a job.
type ApplyToJobRequest struct {
	JobID       uuid.UUID `json:"-"`
	ApplicantID uuid.UUID `json:"-"` // Set internally by handler from auth context
	CoverLetter string    `json:"cover_letter" validate:"omitempty,max=2000"`
	Resume      string    `json:"resume" validate:"required,max=500"`
}

// UpdateApplicationStatusRequest sets a new status label on an application.
type UpdateApplicationStatusRequest struct {
	JobID         uuid.UUID `json:"-"`
	ApplicationID uuid.UUID `json:"-"`
	UserID        uuid.UUID `json:"-"`
	Status        string    `json:"status" validate:"required,oneof=Applied 'Under Review' Shortlisted Rejected Hired"`
}

// ListJobApplicationsRequest lists applications of one job (poster only).
type ListJobApplicationsRequest struct {
	JobID  uuid.UUID `json:"-"`
	UserID uuid.UUID `json:"-"`
}

// ListMyApplicationsRequest defines pagination for an applicant's applications.
type ListMyApplicationsRequest struct {
	ApplicantID uuid.UUID `json:"-"`
	Page        int       `form:"page,default=1" validate:"omitempty,gte=1"`
	Limit       int       `form:"limit,default=10" validate:"omitempty,gte=1,lte=100"`
}

// ApplicationResponse is an application joined with its applicant identity.
type ApplicationResponse struct {
	ID          uuid.UUID                 `json:"id"`
	JobID       uuid.UUID                 `json:"job_id"`
	Applicant   models.ApplicantIdentity  `json:"applicant"`
	CoverLetter string                    `json:"cover_letter,omitempty"`
	Resume      string                    `json:"resume"`
	Status      models.ApplicationStatus  `json:"status"`
	AppliedAt   time.Time                 `json:"applied_at"`
}

// JobApplicationsResponse lists a job's applications with a job summary.
type JobApplicationsResponse struct {
	Job          models.JobSummary     `json:"job"`
	Applications []ApplicationResponse `json:"applications"`
}

// MyApplicationEntry is one row of the applicant's own application list.
type MyApplicationEntry struct {
	Job         models.JobSummary        `json:"job"`
	Application models.Application       `json:"application"`
}

// MyApplicationsResponse is a page of the applicant's applications.
type MyApplicationsResponse struct {
	Applications []MyApplicationEntry `json:"applications"`
	Pagination   Pagination           `json:"pagination"`
}
