package services

import (
	"context"
	"testing"
	"time"

	"jobboard-api/internal/models"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBuildApplicantStats_Empty(t *testing.T) {
	stats := buildApplicantStats(nil, nil, time.Now())

	assert.Zero(t, stats.TotalApplications)
	assert.Empty(t, stats.ApplicationTrend)
	assert.Empty(t, stats.RecentApplications)

	// The status map always carries every key, even at zero.
	require.Len(t, stats.ApplicationsByStatus, 5)
	for _, key := range []string{"applied", "under_review", "shortlisted", "rejected", "hired"} {
		count, ok := stats.ApplicationsByStatus[key]
		assert.True(t, ok, "missing status key %q", key)
		assert.Zero(t, count)
	}
}

func TestBuildApplicantStats_StatusKeysNormalized(t *testing.T) {
	now := time.Now()
	apps := []models.Application{
		{Status: models.ApplicationStatusUnderReview, AppliedAt: now},
		{Status: models.ApplicationStatusUnderReview, AppliedAt: now},
		{Status: models.ApplicationStatusHired, AppliedAt: now},
	}
	jobs := make([]models.JobSummary, len(apps))

	stats := buildApplicantStats(apps, jobs, now)

	assert.Equal(t, 3, stats.TotalApplications)
	assert.Equal(t, 2, stats.ApplicationsByStatus["under_review"])
	assert.Equal(t, 1, stats.ApplicationsByStatus["hired"])
	assert.Equal(t, 0, stats.ApplicationsByStatus["applied"])
}

func TestBuildApplicantStats_TrendChronologicalWithin30Days(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	apps := []models.Application{
		{Status: models.ApplicationStatusApplied, AppliedAt: now.AddDate(0, 0, -1)},
		{Status: models.ApplicationStatusApplied, AppliedAt: now.AddDate(0, 0, -10)},
		{Status: models.ApplicationStatusApplied, AppliedAt: now.AddDate(0, 0, -10)},
		// Outside the window; counted in totals but not in the trend.
		{Status: models.ApplicationStatusApplied, AppliedAt: now.AddDate(0, 0, -45)},
	}
	jobs := make([]models.JobSummary, len(apps))

	stats := buildApplicantStats(apps, jobs, now)

	assert.Equal(t, 4, stats.TotalApplications)
	require.Len(t, stats.ApplicationTrend, 2)
	assert.Equal(t, dto.TrendPoint{Date: "2025-06-05", Count: 2}, stats.ApplicationTrend[0])
	assert.Equal(t, dto.TrendPoint{Date: "2025-06-14", Count: 1}, stats.ApplicationTrend[1])
}

func TestBuildApplicantStats_RecentCappedAtTen(t *testing.T) {
	now := time.Now()
	apps := make([]models.Application, 14)
	jobs := make([]models.JobSummary, 14)
	for i := range apps {
		apps[i] = models.Application{
			ID:        uuid.New(),
			Status:    models.ApplicationStatusApplied,
			AppliedAt: now.Add(-time.Duration(i) * time.Hour),
		}
		jobs[i] = models.JobSummary{ID: uuid.New()}
	}

	stats := buildApplicantStats(apps, jobs, now)

	require.Len(t, stats.RecentApplications, 10)
	// Rows arrive newest first and the cap keeps that prefix.
	assert.Equal(t, apps[0].ID, stats.RecentApplications[0].Application.ID)
	assert.Equal(t, apps[9].ID, stats.RecentApplications[9].Application.ID)
}

func TestDashboardService_GetJobAnalytics_NotPoster(t *testing.T) {
	reportRepo := &mockReportRepo{}
	jobRepo := &mockJobRepo{}
	svc := NewDashboardService(reportRepo, jobRepo)
	ctx := context.Background()

	job := &models.Job{ID: uuid.New(), PostedBy: uuid.New()}
	jobRepo.On("GetByID", ctx, job.ID).Return(job, nil)

	_, err := svc.GetJobAnalytics(ctx, job.ID, uuid.New())

	require.ErrorIs(t, err, ErrForbidden)
	reportRepo.AssertNotCalled(t, "JobAnalytics", mock.Anything, mock.Anything)
}

func TestDashboardService_GetStats_ApplicantViewOnly(t *testing.T) {
	reportRepo := &mockReportRepo{}
	jobRepo := &mockJobRepo{}
	svc := NewDashboardService(reportRepo, jobRepo)
	ctx := context.Background()

	userID := uuid.New()
	reportRepo.On("ApplicantApplications", ctx, userID).Return([]models.Application{}, []models.JobSummary{}, nil)

	resp, err := svc.GetStats(ctx, userID, models.RoleUser)

	require.NoError(t, err)
	require.NotNil(t, resp.Applicant)
	assert.Nil(t, resp.Poster)
	assert.Equal(t, string(models.RoleUser), resp.Role)
	assert.Zero(t, resp.Applicant.TotalApplications)
	assert.Len(t, resp.Applicant.ApplicationsByStatus, 5)
	// Applicants never trigger the poster aggregations.
	reportRepo.AssertNotCalled(t, "PosterStats", mock.Anything, mock.Anything)
}

func TestDashboardService_GetStats_PosterViewOnly(t *testing.T) {
	reportRepo := &mockReportRepo{}
	jobRepo := &mockJobRepo{}
	svc := NewDashboardService(reportRepo, jobRepo)
	ctx := context.Background()

	userID := uuid.New()
	reportRepo.On("PosterStats", ctx, userID).Return(&dto.PosterStats{TotalJobs: 3}, nil)

	resp, err := svc.GetStats(ctx, userID, models.RoleAdmin)

	require.NoError(t, err)
	require.NotNil(t, resp.Poster)
	assert.Nil(t, resp.Applicant)
	assert.Equal(t, 3, resp.Poster.TotalJobs)
	reportRepo.AssertNotCalled(t, "ApplicantApplications", mock.Anything, mock.Anything)
}
