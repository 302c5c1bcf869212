package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobboard-api/internal/models"
	"jobboard-api/internal/policy"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"
)

// applicationService implements ApplicationService.
type applicationService struct {
	appRepo storage.ApplicationRepository
	jobRepo storage.JobRepository
}

// NewApplicationService creates a new ApplicationService.
func NewApplicationService(appRepo storage.ApplicationRepository, jobRepo storage.JobRepository) ApplicationService {
	return &applicationService{appRepo: appRepo, jobRepo: jobRepo}
}

// Compile-time check to ensure applicationService implements ApplicationService
var _ ApplicationService = (*applicationService)(nil)

// ApplyToJob submits an application. The preconditions are evaluated in
// policy order, and the final duplicate check rides on the insert itself so
// two concurrent applies cannot both pass.
func (s *applicationService) ApplyToJob(ctx context.Context, req *dto.ApplyToJobRequest) (*dto.ApplicationResponse, error) {
	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, MapRepoError(err, "apply to job")
	}

	applied, err := s.appRepo.Exists(ctx, req.JobID, req.ApplicantID)
	if err != nil {
		return nil, MapRepoError(err, "apply to job")
	}

	switch policy.CheckApply(job, req.ApplicantID, time.Now(), applied) {
	case policy.ApplyDeniedOwnJob:
		return nil, fmt.Errorf("%w: cannot apply to your own job", ErrForbidden)
	case policy.ApplyDeniedNotPublished:
		return nil, ErrJobNotPublished
	case policy.ApplyDeniedDeadlinePassed:
		return nil, ErrDeadlinePassed
	case policy.ApplyDeniedDuplicate:
		return nil, fmt.Errorf("%w: already applied to this job", ErrConflict)
	}

	app := &models.Application{
		JobID:       req.JobID,
		ApplicantID: req.ApplicantID,
		CoverLetter: req.CoverLetter,
		Resume:      req.Resume,
	}
	created, err := s.appRepo.Create(ctx, app)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: already applied to this job", ErrConflict)
		}
		return nil, MapRepoError(err, "apply to job")
	}

	resp := MapApplicationToResponse(created, models.ApplicantIdentity{ID: created.ApplicantID})
	return &resp, nil
}

// ListJobApplications returns every application for a job the caller posted.
func (s *applicationService) ListJobApplications(ctx context.Context, req *dto.ListJobApplicationsRequest) (*dto.JobApplicationsResponse, error) {
	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, MapRepoError(err, "list job applications")
	}
	if !policy.CanViewApplications(job, req.UserID) {
		return nil, fmt.Errorf("%w: only the poster can view applications", ErrForbidden)
	}

	apps, applicants, err := s.appRepo.ListByJob(ctx, req.JobID)
	if err != nil {
		return nil, MapRepoError(err, "list job applications")
	}

	out := &dto.JobApplicationsResponse{
		Job: models.JobSummary{
			ID:       job.ID,
			Title:    job.Title,
			Company:  job.Company,
			Location: job.Location,
			JobType:  job.JobType,
			WorkMode: job.WorkMode,
		},
		Applications: make([]dto.ApplicationResponse, 0, len(apps)),
	}
	for i := range apps {
		out.Applications = append(out.Applications, MapApplicationToResponse(&apps[i], applicants[i]))
	}
	return out, nil
}

// UpdateApplicationStatus sets a new status label on an application of a job
// the caller posted. Any label from the allowed set may follow any other.
func (s *applicationService) UpdateApplicationStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error) {
	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, MapRepoError(err, "update application status")
	}
	if !policy.CanViewApplications(job, req.UserID) {
		return nil, fmt.Errorf("%w: only the poster can update applications", ErrForbidden)
	}

	app, err := s.appRepo.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return nil, MapRepoError(err, "update application status")
	}
	if app.JobID != req.JobID {
		return nil, fmt.Errorf("%w: application does not belong to this job", ErrNotFound)
	}

	updated, err := s.appRepo.UpdateStatus(ctx, req.ApplicationID, models.ApplicationStatus(req.Status))
	if err != nil {
		return nil, MapRepoError(err, "update application status")
	}

	resp := MapApplicationToResponse(updated, models.ApplicantIdentity{ID: updated.ApplicantID})
	return &resp, nil
}

// ListMyApplications returns one page of the caller's own applications.
func (s *applicationService) ListMyApplications(ctx context.Context, req *dto.ListMyApplicationsRequest) (*dto.MyApplicationsResponse, error) {
	page, limit := normalizePage(req.Page, req.Limit)

	apps, jobs, total, err := s.appRepo.ListByApplicant(ctx, req.ApplicantID, page, limit)
	if err != nil {
		return nil, MapRepoError(err, "list my applications")
	}

	out := &dto.MyApplicationsResponse{
		Applications: make([]dto.MyApplicationEntry, 0, len(apps)),
		Pagination:   buildPagination(page, limit, total),
	}
	for i := range apps {
		out.Applications = append(out.Applications, dto.MyApplicationEntry{
			Job:         jobs[i],
			Application: apps[i],
		})
	}
	return out, nil
}
