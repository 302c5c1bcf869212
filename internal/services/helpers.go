package services

import (
	"errors"
	"fmt"
	"log"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"
)

// MapRepoError maps storage errors to service errors
func MapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	if errors.Is(err, storage.ErrUnavailable) {
		return fmt.Errorf("%w: %s", ErrStoreUnavailable, operation)
	}
	// Log other unexpected errors
	log.Printf("Unexpected repository error during %s: %v", operation, err)
	return fmt.Errorf("internal error during %s: %w", operation, err)
}

// buildPagination derives the page descriptor from the unpaged total.
func buildPagination(page, limit, total int) dto.Pagination {
	if limit <= 0 {
		limit = 10
	}
	totalPages := (total + limit - 1) / limit
	return dto.Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		Total:       total,
		HasNext:     page < totalPages,
		HasPrev:     page > 1 && total > 0,
	}
}

// MapUserToResponse converts a user model to its public DTO.
func MapUserToResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:             user.ID,
		Firstname:      user.Firstname,
		Lastname:       user.Lastname,
		Email:          user.Email,
		Role:           user.Role,
		Phone:          user.Phone,
		Location:       user.Location,
		Bio:            user.Bio,
		Skills:         user.Skills,
		ProfilePicture: user.ProfilePicture,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}

// MapJobToResponse converts a job model to its public DTO.
func MapJobToResponse(job *models.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:                  job.ID,
		Title:               job.Title,
		Company:             job.Company,
		Location:            job.Location,
		JobType:             job.JobType,
		WorkMode:            job.WorkMode,
		CategoryID:          job.CategoryID,
		Description:         job.Description,
		Skills:              job.Skills,
		Tags:                job.Tags,
		Requirements:        job.Requirements,
		Benefits:            job.Benefits,
		SalaryMin:           job.SalaryMin,
		SalaryMax:           job.SalaryMax,
		SalaryCurrency:      job.SalaryCurrency,
		ApplicationDeadline: job.ApplicationDeadline,
		Status:              job.Status,
		PostedBy:            job.PostedBy,
		ViewCount:           job.ViewCount,
		Featured:            job.Featured,
		ApplicationCount:    job.ApplicationCount,
		CreatedAt:           job.CreatedAt,
		UpdatedAt:           job.UpdatedAt,
	}
}

// MapJobsToResponses converts a slice of job models.
func MapJobsToResponses(jobs []models.Job) []dto.JobResponse {
	out := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, MapJobToResponse(&jobs[i]))
	}
	return out
}

// MapCategoryToResponse converts a category model to its public DTO.
func MapCategoryToResponse(cat *models.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          cat.ID,
		Name:        cat.Name,
		Description: cat.Description,
		Color:       cat.Color,
		Icon:        cat.Icon,
		IsActive:    cat.IsActive,
		JobCount:    cat.JobCount,
		CreatedBy:   cat.CreatedBy,
		CreatedAt:   cat.CreatedAt,
		UpdatedAt:   cat.UpdatedAt,
	}
}

// MapApplicationToResponse pairs an application with its applicant identity.
func MapApplicationToResponse(app *models.Application, applicant models.ApplicantIdentity) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:          app.ID,
		JobID:       app.JobID,
		Applicant:   applicant,
		CoverLetter: app.CoverLetter,
		Resume:      app.Resume,
		Status:      app.Status,
		AppliedAt:   app.AppliedAt,
	}
}
