package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"jobboard-api/internal/models"
	"jobboard-api/internal/policy"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// dashboardService implements DashboardService. Poster aggregates come from
// SQL; the applicant view is shaped here from raw application rows.
type dashboardService struct {
	reportRepo storage.ReportRepository
	jobRepo    storage.JobRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(reportRepo storage.ReportRepository, jobRepo storage.JobRepository) DashboardService {
	return &dashboardService{reportRepo: reportRepo, jobRepo: jobRepo}
}

// Compile-time check to ensure dashboardService implements DashboardService
var _ DashboardService = (*dashboardService)(nil)

// applicantStatusKeys is the fixed key set of the applicant status map.
// Every key is present even at zero.
var applicantStatusKeys = []models.ApplicationStatus{
	models.ApplicationStatusApplied,
	models.ApplicationStatusUnderReview,
	models.ApplicationStatusShortlisted,
	models.ApplicationStatusRejected,
	models.ApplicationStatusHired,
}

// GetStats builds the dashboard view matching the caller's role: posters see
// their jobs and incoming applications, applicants see their own
// applications. A caller with no activity gets zeroed sections, never an
// error.
func (s *dashboardService) GetStats(ctx context.Context, userID uuid.UUID, role models.UserRole) (*dto.DashboardStatsResponse, error) {
	out := &dto.DashboardStatsResponse{Role: string(role)}

	if role == models.RoleAdmin {
		posterStats, err := s.reportRepo.PosterStats(ctx, userID)
		if err != nil {
			return nil, MapRepoError(err, "dashboard stats")
		}
		out.Poster = posterStats
		return out, nil
	}

	apps, jobs, err := s.reportRepo.ApplicantApplications(ctx, userID)
	if err != nil {
		return nil, MapRepoError(err, "dashboard stats")
	}
	applicant := buildApplicantStats(apps, jobs, time.Now())
	out.Applicant = &applicant
	return out, nil
}

// GetJobAnalytics details one job's performance for its poster.
func (s *dashboardService) GetJobAnalytics(ctx context.Context, jobID, userID uuid.UUID) (*dto.JobAnalyticsResponse, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, MapRepoError(err, "job analytics")
	}
	if !policy.CanMutateJob(job, userID) {
		return nil, fmt.Errorf("%w: only the poster can view job analytics", ErrForbidden)
	}

	analytics, err := s.reportRepo.JobAnalytics(ctx, jobID)
	if err != nil {
		return nil, MapRepoError(err, "job analytics")
	}
	return analytics, nil
}

// buildApplicantStats shapes the applicant dashboard from the raw rows:
// counts keyed by normalized status, a 30 day daily trend oldest first, and
// the 10 most recent applications.
func buildApplicantStats(apps []models.Application, jobs []models.JobSummary, now time.Time) dto.ApplicantStats {
	stats := dto.ApplicantStats{
		TotalApplications:    len(apps),
		ApplicationsByStatus: map[string]int{},
		ApplicationTrend:     []dto.TrendPoint{},
		RecentApplications:   []dto.MyApplicationEntry{},
	}

	for _, key := range applicantStatusKeys {
		stats.ApplicationsByStatus[normalizeStatusKey(key)] = 0
	}
	for _, app := range apps {
		stats.ApplicationsByStatus[normalizeStatusKey(app.Status)]++
	}

	cutoff := now.AddDate(0, 0, -30)
	recent := lo.Filter(apps, func(app models.Application, _ int) bool {
		return app.AppliedAt.After(cutoff)
	})
	byDay := lo.CountValuesBy(recent, func(app models.Application) string {
		return app.AppliedAt.Format("2006-01-02")
	})
	days := lo.Keys(byDay)
	sort.Strings(days)
	stats.ApplicationTrend = lo.Map(days, func(day string, _ int) dto.TrendPoint {
		return dto.TrendPoint{Date: day, Count: byDay[day]}
	})

	// Rows arrive newest first.
	limit := lo.Min([]int{len(apps), 10})
	for i := 0; i < limit; i++ {
		stats.RecentApplications = append(stats.RecentApplications, dto.MyApplicationEntry{
			Job:         jobs[i],
			Application: apps[i],
		})
	}

	return stats
}

// normalizeStatusKey lowercases a status label and replaces spaces with
// underscores, e.g. "Under Review" -> "under_review".
func normalizeStatusKey(status models.ApplicationStatus) string {
	return strings.ReplaceAll(strings.ToLower(string(status)), " ", "_")
}

