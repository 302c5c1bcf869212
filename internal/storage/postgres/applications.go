package postgres

import (
	"context"
	"log"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ApplicationRepo implements the storage.ApplicationRepository interface
// using PostgreSQL.
type ApplicationRepo struct {
	db Querier
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}


// Compile-time check to ensure ApplicationRepo implements ApplicationRepository
var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

const applicationColumns = `id, job_id, applicant_id, cover_letter, resume, status, applied_at`

// Create inserts the application. The (job_id, applicant_id) unique
// constraint makes the duplicate check and the insert one atomic statement,
// so two concurrent applies produce exactly one row and one ErrConflict.
func (r *ApplicationRepo) Create(ctx context.Context, app *models.Application) (*models.Application, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}

	query := `
		INSERT INTO applications (id, job_id, applicant_id, cover_letter, resume, status, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (job_id, applicant_id) DO NOTHING
		RETURNING ` + applicationColumns

	rows, err := r.db.Query(ctx, query,
		app.ID,
		app.JobID,
		app.ApplicantID,
		app.CoverLetter,
		app.Resume,
		models.ApplicationStatusApplied,
	)
	if err != nil {
		log.Printf("Error creating application: %v\n", err)
		return nil, mapPgError(err)
	}
	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Application])
	if err != nil {
		mapped := mapPgError(err)
		if mapped == storage.ErrNotFound {
			// DO NOTHING returned zero rows: the applicant already applied.
			return nil, storage.ErrConflict
		}
		log.Printf("Error creating application: %v\n", err)
		return nil, mapped
	}

	log.Printf("Application created successfully with ID: %s", created.ID)
	return &created, nil
}

// GetByID retrieves a specific application by its ID.
func (r *ApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		log.Printf("Error querying application %s: %v\n", id, err)
		return nil, mapPgError(err)
	}
	app, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Application])
	if err != nil {
		mapped := mapPgError(err)
		if mapped != storage.ErrNotFound {
			log.Printf("Error scanning application %s: %v\n", id, err)
		}
		return nil, mapped
	}
	return &app, nil
}

// ListByJob returns all applications for one job, newest first, together
// with the applicants' identities in matching order.
func (r *ApplicationRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, []models.ApplicantIdentity, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `
		SELECT a.id, a.job_id, a.applicant_id, a.cover_letter, a.resume, a.status, a.applied_at,
		       u.firstname, u.lastname, u.email
		FROM applications a
		JOIN users u ON u.id = a.applicant_id
		WHERE a.job_id = $1
		ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		log.Printf("Error listing applications for job %s: %v\n", jobID, err)
		return nil, nil, mapPgError(err)
	}
	defer rows.Close()

	var apps []models.Application
	var applicants []models.ApplicantIdentity
	for rows.Next() {
		var app models.Application
		var ident models.ApplicantIdentity
		err := rows.Scan(
			&app.ID, &app.JobID, &app.ApplicantID, &app.CoverLetter, &app.Resume, &app.Status, &app.AppliedAt,
			&ident.Firstname, &ident.Lastname, &ident.Email,
		)
		if err != nil {
			log.Printf("Error scanning application row for job %s: %v\n", jobID, err)
			return nil, nil, mapPgError(err)
		}
		ident.ID = app.ApplicantID
		apps = append(apps, app)
		applicants = append(applicants, ident)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, mapPgError(err)
	}
	return apps, applicants, nil
}

// ListByApplicant returns one page of the applicant's applications, newest
// first, with a summary of each job and the unpaged total.
func (r *ApplicationRepo) ListByApplicant(ctx context.Context, applicantID uuid.UUID, page, limit int) ([]models.Application, []models.JobSummary, int, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applications WHERE applicant_id = $1`, applicantID).Scan(&total); err != nil {
		log.Printf("Error counting applications for applicant %s: %v\n", applicantID, err)
		return nil, nil, 0, mapPgError(err)
	}

	query := `
		SELECT a.id, a.job_id, a.applicant_id, a.cover_letter, a.resume, a.status, a.applied_at,
		       j.title, j.company, j.location, j.job_type, j.work_mode
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.applicant_id = $1
		ORDER BY a.applied_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, applicantID, limit, (page-1)*limit)
	if err != nil {
		log.Printf("Error listing applications for applicant %s: %v\n", applicantID, err)
		return nil, nil, 0, mapPgError(err)
	}
	defer rows.Close()

	var apps []models.Application
	var jobs []models.JobSummary
	for rows.Next() {
		var app models.Application
		var job models.JobSummary
		err := rows.Scan(
			&app.ID, &app.JobID, &app.ApplicantID, &app.CoverLetter, &app.Resume, &app.Status, &app.AppliedAt,
			&job.Title, &job.Company, &job.Location, &job.JobType, &job.WorkMode,
		)
		if err != nil {
			log.Printf("Error scanning application row for applicant %s: %v\n", applicantID, err)
			return nil, nil, 0, mapPgError(err)
		}
		job.ID = app.JobID
		apps = append(apps, app)
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, 0, mapPgError(err)
	}
	return apps, jobs, total, nil
}

// UpdateStatus overwrites the application's status label.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.Application, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `UPDATE applications SET status = $1 WHERE id = $2 RETURNING ` + applicationColumns
	rows, err := r.db.Query(ctx, query, status, id)
	if err != nil {
		log.Printf("Error updating status for application %s: %v\n", id, err)
		return nil, mapPgError(err)
	}
	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Application])
	if err != nil {
		mapped := mapPgError(err)
		if mapped != storage.ErrNotFound {
			log.Printf("Error updating status for application %s: %v\n", id, err)
		}
		return nil, mapped
	}
	return &updated, nil
}

// CountForPoster totals the applications received across the poster's jobs.
func (r *ApplicationRepo) CountForPoster(ctx context.Context, posterID uuid.UUID) (int, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var count int
	query := `
		SELECT COUNT(*)
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE j.posted_by = $1`
	if err := r.db.QueryRow(ctx, query, posterID).Scan(&count); err != nil {
		log.Printf("Error counting applications for poster %s: %v\n", posterID, err)
		return 0, mapPgError(err)
	}
	return count, nil
}

// Exists reports whether the applicant already applied to the job.
func (r *ApplicationRepo) Exists(ctx context.Context, jobID, applicantID uuid.UUID) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM applications WHERE job_id = $1 AND applicant_id = $2)`
	if err := r.db.QueryRow(ctx, query, jobID, applicantID).Scan(&exists); err != nil {
		log.Printf("Error checking application existence: %v\n", err)
		return false, mapPgError(err)
	}
	return exists, nil
}
