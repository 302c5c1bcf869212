package postgres

import (
	"context"
	"log"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReportRepo implements storage.ReportRepository using PostgreSQL. The
// poster-side aggregates run in SQL; the applicant side hands raw rows to
// the service for shaping.
type ReportRepo struct {
	db Querier
}

// NewReportRepo creates a new ReportRepo.
func NewReportRepo(db *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{db: db}
}


// Compile-time check to ensure ReportRepo implements ReportRepository
var _ storage.ReportRepository = (*ReportRepo)(nil)

// PosterStats aggregates the poster's jobs and their applications. A caller
// with no jobs gets zeroed stats, never an error.
func (r *ReportRepo) PosterStats(ctx context.Context, posterID uuid.UUID) (*dto.PosterStats, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	stats := &dto.PosterStats{
		JobsByStatus:         map[string]int{},
		ApplicationsByStatus: map[string]int{},
		RecentApplications:   []dto.ApplicationResponse{},
		TopJobs:              []dto.TopJobEntry{},
	}

	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*), COALESCE(SUM(view_count), 0) FROM jobs WHERE posted_by = $1 GROUP BY status`, posterID)
	if err != nil {
		log.Printf("Error aggregating job stats for poster %s: %v\n", posterID, err)
		return nil, mapPgError(err)
	}
	for rows.Next() {
		var status string
		var count, views int
		if err := rows.Scan(&status, &count, &views); err != nil {
			rows.Close()
			return nil, mapPgError(err)
		}
		stats.JobsByStatus[status] = count
		stats.TotalJobs += count
		stats.TotalViews += views
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err)
	}

	appQuery := `
		SELECT a.status, COUNT(*)
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE j.posted_by = $1
		GROUP BY a.status`
	rows, err = r.db.Query(ctx, appQuery, posterID)
	if err != nil {
		log.Printf("Error aggregating application stats for poster %s: %v\n", posterID, err)
		return nil, mapPgError(err)
	}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			rows.Close()
			return nil, mapPgError(err)
		}
		stats.ApplicationsByStatus[status] = count
		stats.TotalApplications += count
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err)
	}

	recentQuery := `
		SELECT a.id, a.job_id, a.applicant_id, a.cover_letter, a.resume, a.status, a.applied_at,
		       u.firstname, u.lastname, u.email
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN users u ON u.id = a.applicant_id
		WHERE j.posted_by = $1
		ORDER BY a.applied_at DESC
		LIMIT 10`
	rows, err = r.db.Query(ctx, recentQuery, posterID)
	if err != nil {
		log.Printf("Error listing recent applications for poster %s: %v\n", posterID, err)
		return nil, mapPgError(err)
	}
	for rows.Next() {
		var app dto.ApplicationResponse
		var ident models.ApplicantIdentity
		err := rows.Scan(
			&app.ID, &app.JobID, &ident.ID, &app.CoverLetter, &app.Resume, &app.Status, &app.AppliedAt,
			&ident.Firstname, &ident.Lastname, &ident.Email,
		)
		if err != nil {
			rows.Close()
			return nil, mapPgError(err)
		}
		app.Applicant = ident
		stats.RecentApplications = append(stats.RecentApplications, app)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err)
	}

	topQuery := `
		SELECT id, title, status, view_count,
		       (SELECT COUNT(*) FROM applications a WHERE a.job_id = jobs.id) AS application_count
		FROM jobs
		WHERE posted_by = $1
		ORDER BY view_count DESC, created_at DESC
		LIMIT 5`
	rows, err = r.db.Query(ctx, topQuery, posterID)
	if err != nil {
		log.Printf("Error listing top jobs for poster %s: %v\n", posterID, err)
		return nil, mapPgError(err)
	}
	stats.TopJobs, err = pgx.CollectRows(rows, pgx.RowToStructByNameLax[dto.TopJobEntry])
	if err != nil {
		return nil, mapPgError(err)
	}
	if stats.TopJobs == nil {
		stats.TopJobs = []dto.TopJobEntry{}
	}

	return stats, nil
}

// ApplicantApplications returns every application of the applicant with a
// summary of each job, newest first.
func (r *ReportRepo) ApplicantApplications(ctx context.Context, applicantID uuid.UUID) ([]models.Application, []models.JobSummary, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `
		SELECT a.id, a.job_id, a.applicant_id, a.cover_letter, a.resume, a.status, a.applied_at,
		       j.title, j.company, j.location, j.job_type, j.work_mode
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.applicant_id = $1
		ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, applicantID)
	if err != nil {
		log.Printf("Error listing applications for applicant %s: %v\n", applicantID, err)
		return nil, nil, mapPgError(err)
	}
	defer rows.Close()

	apps := []models.Application{}
	jobs := []models.JobSummary{}
	for rows.Next() {
		var app models.Application
		var job models.JobSummary
		err := rows.Scan(
			&app.ID, &app.JobID, &app.ApplicantID, &app.CoverLetter, &app.Resume, &app.Status, &app.AppliedAt,
			&job.Title, &job.Company, &job.Location, &job.JobType, &job.WorkMode,
		)
		if err != nil {
			return nil, nil, mapPgError(err)
		}
		job.ID = app.JobID
		apps = append(apps, app)
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, mapPgError(err)
	}
	return apps, jobs, nil
}

// JobAnalytics details one job's performance with a 30 day application
// trend at day granularity, oldest day first.
func (r *ReportRepo) JobAnalytics(ctx context.Context, jobID uuid.UUID) (*dto.JobAnalyticsResponse, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	out := &dto.JobAnalyticsResponse{
		ApplicationsByStatus: map[string]int{},
		ApplicationTrend:     []dto.TrendPoint{},
	}

	jobQuery := `
		SELECT id, title, status, view_count,
		       (SELECT COUNT(*) FROM applications a WHERE a.job_id = jobs.id),
		       created_at
		FROM jobs WHERE id = $1`
	err := r.db.QueryRow(ctx, jobQuery, jobID).Scan(
		&out.JobID, &out.Title, &out.Status, &out.ViewCount, &out.ApplicationCount, &out.PostedAt,
	)
	if err != nil {
		mapped := mapPgError(err)
		if mapped != storage.ErrNotFound {
			log.Printf("Error loading analytics for job %s: %v\n", jobID, err)
		}
		return nil, mapped
	}

	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM applications WHERE job_id = $1 GROUP BY status`, jobID)
	if err != nil {
		return nil, mapPgError(err)
	}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			rows.Close()
			return nil, mapPgError(err)
		}
		out.ApplicationsByStatus[status] = count
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err)
	}

	trendQuery := `
		SELECT TO_CHAR(DATE(applied_at), 'YYYY-MM-DD') AS date, COUNT(*) AS count
		FROM applications
		WHERE job_id = $1 AND applied_at >= NOW() - INTERVAL '30 days'
		GROUP BY DATE(applied_at)
		ORDER BY DATE(applied_at)`
	rows, err = r.db.Query(ctx, trendQuery, jobID)
	if err != nil {
		return nil, mapPgError(err)
	}
	out.ApplicationTrend, err = pgx.CollectRows(rows, pgx.RowToStructByName[dto.TrendPoint])
	if err != nil {
		return nil, mapPgError(err)
	}
	if out.ApplicationTrend == nil {
		out.ApplicationTrend = []dto.TrendPoint{}
	}

	return out, nil
}
