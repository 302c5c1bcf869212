package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"jobboard-api/internal/models"
	"jobboard-api/internal/policy"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
)

// jobService implements JobService.
type jobService struct {
	jobRepo      storage.JobRepository
	appRepo      storage.ApplicationRepository
	categoryRepo storage.CategoryRepository
}

// NewJobService creates a new JobService.
func NewJobService(jobRepo storage.JobRepository, appRepo storage.ApplicationRepository, categoryRepo storage.CategoryRepository) JobService {
	return &jobService{jobRepo: jobRepo, appRepo: appRepo, categoryRepo: categoryRepo}
}

// Compile-time check to ensure jobService implements JobService
var _ JobService = (*jobService)(nil)

// CreateJob saves a new posting owned by the caller. A posting without a
// category lands in the default one.
func (s *jobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	if req.SalaryMin != nil && req.SalaryMax != nil && *req.SalaryMin > *req.SalaryMax {
		return nil, fmt.Errorf("%w: salary_min exceeds salary_max", ErrValidation)
	}

	if req.CategoryID == nil {
		cat, err := s.categoryRepo.EnsureDefault(ctx)
		if err != nil {
			return nil, MapRepoError(err, "resolve default category")
		}
		req.CategoryID = &cat.ID
	}

	job, err := s.jobRepo.Create(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: unknown category", ErrValidation)
		}
		return nil, MapRepoError(err, "create job")
	}

	resp := MapJobToResponse(job)
	return &resp, nil
}

// GetJobByID loads a job and counts the read as one view. The increment is
// best effort; a failed bump never hides the job.
func (s *jobService) GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*dto.JobResponse, error) {
	job, err := s.jobRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, MapRepoError(err, "get job")
	}

	if err := s.jobRepo.IncrementViewCount(ctx, req.ID); err != nil {
		log.Printf("JobService: Failed to increment view count for job %s: %v", req.ID, err)
	} else {
		job.ViewCount++
	}

	resp := MapJobToResponse(job)
	return &resp, nil
}

// UpdateJob applies a partial patch after an ownership check. Status moves
// freely between any two values.
func (s *jobService) UpdateJob(ctx context.Context, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.jobRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, MapRepoError(err, "update job")
	}
	if !policy.CanMutateJob(job, req.UserID) {
		return nil, fmt.Errorf("%w: only the poster can update this job", ErrForbidden)
	}
	if req.SalaryMin != nil && req.SalaryMax != nil && *req.SalaryMin > *req.SalaryMax {
		return nil, fmt.Errorf("%w: salary_min exceeds salary_max", ErrValidation)
	}

	updated, err := s.jobRepo.Update(ctx, req)
	if err != nil {
		return nil, MapRepoError(err, "update job")
	}

	resp := MapJobToResponse(updated)
	return &resp, nil
}

// DeleteJob removes a posting after an ownership check. Its applications go
// with it.
func (s *jobService) DeleteJob(ctx context.Context, req *dto.DeleteJobRequest) error {
	job, err := s.jobRepo.GetByID(ctx, req.ID)
	if err != nil {
		return MapRepoError(err, "delete job")
	}
	if !policy.CanMutateJob(job, req.UserID) {
		return fmt.Errorf("%w: only the poster can delete this job", ErrForbidden)
	}

	if err := s.jobRepo.Delete(ctx, req.ID); err != nil {
		return MapRepoError(err, "delete job")
	}
	return nil
}

// ListMyJobs returns one page of the caller's postings in every status.
func (s *jobService) ListMyJobs(ctx context.Context, req *dto.ListMyJobsRequest) (*dto.JobListResponse, error) {
	page, limit := normalizePage(req.Page, req.Limit)

	jobs, total, err := s.jobRepo.ListByPoster(ctx, req.PosterID, page, limit)
	if err != nil {
		return nil, MapRepoError(err, "list my jobs")
	}

	return &dto.JobListResponse{
		Jobs:       MapJobsToResponses(jobs),
		Pagination: buildPagination(page, limit, total),
	}, nil
}

// GetStatistics summarizes the caller's postings by status.
func (s *jobService) GetStatistics(ctx context.Context, posterID uuid.UUID) (*dto.JobStatisticsResponse, error) {
	counts, err := s.jobRepo.CountByPosterAndStatus(ctx, posterID)
	if err != nil {
		return nil, MapRepoError(err, "job statistics")
	}

	stats := &dto.JobStatisticsResponse{
		PublishedJobs: counts[models.JobStatusPublished],
		DraftJobs:     counts[models.JobStatusDraft],
		ClosedJobs:    counts[models.JobStatusClosed],
		FilledJobs:    counts[models.JobStatusFilled],
	}
	for _, c := range counts {
		stats.TotalJobs += c
	}

	stats.TotalApplications, err = s.appRepo.CountForPoster(ctx, posterID)
	if err != nil {
		return nil, MapRepoError(err, "job statistics")
	}

	return stats, nil
}

// normalizePage clamps pagination inputs to sane values.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
