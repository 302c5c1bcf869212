package services

import (
	"context"
	"testing"
	"time"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupApplicationServiceTest() (context.Context, ApplicationService, *mockApplicationRepo, *mockJobRepo) {
	appRepo := &mockApplicationRepo{}
	jobRepo := &mockJobRepo{}
	return context.Background(), NewApplicationService(appRepo, jobRepo), appRepo, jobRepo
}

func publishedJob(posterID uuid.UUID) *models.Job {
	return &models.Job{
		ID:       uuid.New(),
		Title:    "Backend Engineer",
		Company:  "Acme",
		Status:   models.JobStatusPublished,
		PostedBy: posterID,
	}
}

func TestApplicationService_ApplyToJob_Success(t *testing.T) {
	ctx, svc, appRepo, jobRepo := setupApplicationServiceTest()

	job := publishedJob(uuid.New())
	applicantID := uuid.New()
	req := &dto.ApplyToJobRequest{JobID: job.ID, ApplicantID: applicantID, Resume: "https://cv.example/me.pdf"}

	jobRepo.On("GetByID", ctx, job.ID).Return(job, nil)
	appRepo.On("Exists", ctx, job.ID, applicantID).Return(false, nil)
	appRepo.On("Create", ctx, mock.AnythingOfType("*models.Application")).Return(&models.Application{
		ID:          uuid.New(),
		JobID:       job.ID,
		ApplicantID: applicantID,
		Resume:      req.Resume,
		Status:      models.ApplicationStatusApplied,
		AppliedAt:   time.Now(),
	}, nil)

	resp, err := svc.ApplyToJob(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, job.ID, resp.JobID)
	assert.Equal(t, models.ApplicationStatusApplied, resp.Status)
	appRepo.AssertExpectations(t)
}

func TestApplicationService_ApplyToJob_OwnJob(t *testing.T) {
	ctx, svc, appRepo, jobRepo := setupApplicationServiceTest()

	posterID := uuid.New()
	job := publishedJob(posterID)

	jobRepo.On("GetByID", ctx, job.ID).Return(job, nil)
	appRepo.On("Exists", ctx, job.ID, posterID).Return(false, nil)

	_, err := svc.ApplyToJob(ctx, &dto.ApplyToJobRequest{JobID: job.ID, ApplicantID: posterID, Resume: "cv"})

	require.ErrorIs(t, err, ErrForbidden)
	appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApplicationService_ApplyToJob_NotPublished(t *testing.T) {
	ctx, svc, appRepo, jobRepo := setupApplicationServiceTest()

	job := publishedJob(uuid.New())
	job.Status = models.JobStatusDraft
	applicantID := uuid.New()

	jobRepo.On("GetByID", ctx, job.ID).Return(job, nil)
	appRepo.On("Exists", ctx, job.ID, applicantID).Return(false, nil)

	_, err := svc.ApplyToJob(ctx, &dto.ApplyToJobRequest{JobID: job.ID, ApplicantID: applicantID, Resume: "cv"})

	require.ErrorIs(t, err, ErrJobNotPublished)
}

func TestApplicationService_ApplyToJob_DeadlinePassed(t *testing.T) {
	ctx, svc, appRepo, jobRepo := setupApplicationServiceTest()

	job := publishedJob(uuid.New())
	job.ApplicationDeadline = time.Now().Add(-time.Hour)
	applicantID := uuid.New()

	jobRepo.On("GetByID", ctx, job.ID).Return(job, nil)
	appRepo.On("Exists", ctx, job.ID, applicantID).Return(false, nil)

	_, err := svc.ApplyToJob(ctx, &dto.ApplyToJobRequest{JobID: job.ID, ApplicantID: applicantID, Resume: "cv"})

	require.ErrorIs(t, err, ErrDeadlinePassed)
	appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApplicationService_ApplyToJob_Duplicate(t *testing.T) {
	ctx, svc, appRepo, jobRepo := setupApplicationServiceTest()

	job := publishedJob(uuid.New())
	applicantID := uuid.New()

	jobRepo.On("GetByID", ctx, job.ID).Return(job, nil)
	appRepo.On("Exists", ctx, job.ID, applicantID).Return(true, nil)

	_, err := svc.ApplyToJob(ctx, &dto.ApplyToJobRequest{JobID: job.ID, ApplicantID: applicantID, Resume: "cv"})

	require.ErrorIs(t, err, ErrConflict)
}

func TestApplicationService_ApplyToJob_RaceLoserGetsConflict(t *testing.T) {
	ctx, svc, appRepo, jobRepo := setupApplicationServiceTest()

	job := publishedJob(uuid.New())
	applicantID := uuid.New()

	// The pre-check saw no duplicate but the insert lost the race.
	jobRepo.On("GetByID", ctx, job.ID).Return(job, nil)
	appRepo.On("Exists", ctx, job.ID, applicantID).Return(false, nil)
	appRepo.On("Create", ctx, mock.AnythingOfType("*models.Application")).Return(nil, storage.ErrConflict)

	_, err := svc.ApplyToJob(ctx, &dto.ApplyToJobRequest{JobID: job.ID, ApplicantID: applicantID, Resume: "cv"})

	require.ErrorIs(t, err, ErrConflict)
}

func TestApplicationService_ListJobApplications_NotPoster(t *testing.T) {
	ctx, svc, _, jobRepo := setupApplicationServiceTest()

	job := publishedJob(uuid.New())
	jobRepo.On("GetByID", ctx, job.ID).Return(job, nil)

	_, err := svc.ListJobApplications(ctx, &dto.ListJobApplicationsRequest{JobID: job.ID, UserID: uuid.New()})

	require.ErrorIs(t, err, ErrForbidden)
}

func TestApplicationService_ListJobApplications_Success(t *testing.T) {
	ctx, svc, appRepo, jobRepo := setupApplicationServiceTest()

	posterID := uuid.New()
	job := publishedJob(posterID)
	apps := []models.Application{
		{ID: uuid.New(), JobID: job.ID, ApplicantID: uuid.New(), Status: models.ApplicationStatusApplied},
	}
	applicants := []models.ApplicantIdentity{
		{ID: apps[0].ApplicantID, Firstname: "Ada", Lastname: "Lovelace", Email: "ada@example.com"},
	}

	jobRepo.On("GetByID", ctx, job.ID).Return(job, nil)
	appRepo.On("ListByJob", ctx, job.ID).Return(apps, applicants, nil)

	resp, err := svc.ListJobApplications(ctx, &dto.ListJobApplicationsRequest{JobID: job.ID, UserID: posterID})

	require.NoError(t, err)
	require.Len(t, resp.Applications, 1)
	assert.Equal(t, "Ada", resp.Applications[0].Applicant.Firstname)
	assert.Equal(t, job.ID, resp.Job.ID)
}

func TestApplicationService_UpdateApplicationStatus_AnyJumpAllowed(t *testing.T) {
	ctx, svc, appRepo, jobRepo := setupApplicationServiceTest()

	posterID := uuid.New()
	job := publishedJob(posterID)
	app := &models.Application{ID: uuid.New(), JobID: job.ID, ApplicantID: uuid.New(), Status: models.ApplicationStatusApplied}

	jobRepo.On("GetByID", ctx, job.ID).Return(job, nil)
	appRepo.On("GetByID", ctx, app.ID).Return(app, nil)
	appRepo.On("UpdateStatus", ctx, app.ID, models.ApplicationStatusHired).Return(&models.Application{
		ID: app.ID, JobID: app.JobID, ApplicantID: app.ApplicantID, Status: models.ApplicationStatusHired,
	}, nil)

	// Applied straight to Hired, no intermediate step required.
	resp, err := svc.UpdateApplicationStatus(ctx, &dto.UpdateApplicationStatusRequest{
		JobID: job.ID, ApplicationID: app.ID, UserID: posterID, Status: "Hired",
	})

	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusHired, resp.Status)
}

func TestApplicationService_UpdateApplicationStatus_WrongJob(t *testing.T) {
	ctx, svc, appRepo, jobRepo := setupApplicationServiceTest()

	posterID := uuid.New()
	job := publishedJob(posterID)
	app := &models.Application{ID: uuid.New(), JobID: uuid.New(), ApplicantID: uuid.New()}

	jobRepo.On("GetByID", ctx, job.ID).Return(job, nil)
	appRepo.On("GetByID", ctx, app.ID).Return(app, nil)

	_, err := svc.UpdateApplicationStatus(ctx, &dto.UpdateApplicationStatusRequest{
		JobID: job.ID, ApplicationID: app.ID, UserID: posterID, Status: "Rejected",
	})

	require.ErrorIs(t, err, ErrNotFound)
	appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestApplicationService_ListMyApplications_Pagination(t *testing.T) {
	ctx, svc, appRepo, _ := setupApplicationServiceTest()

	applicantID := uuid.New()
	apps := []models.Application{{ID: uuid.New(), JobID: uuid.New(), ApplicantID: applicantID}}
	jobs := []models.JobSummary{{ID: apps[0].JobID, Title: "Backend Engineer"}}

	appRepo.On("ListByApplicant", ctx, applicantID, 1, 10).Return(apps, jobs, 25, nil)

	resp, err := svc.ListMyApplications(ctx, &dto.ListMyApplicationsRequest{ApplicantID: applicantID})

	require.NoError(t, err)
	assert.Equal(t, 25, resp.Pagination.Total)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.True(t, resp.Pagination.HasNext)
	assert.False(t, resp.Pagination.HasPrev)
	require.Len(t, resp.Applications, 1)
	assert.Equal(t, "Backend Engineer", resp.Applications[0].Job.Title)
}
