package postgres

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
type JobRepo struct {
	db Querier
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *pgxpool.Pool) *JobRepo {
	return &JobRepo{db: db}
}


// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

// application_count is derived on every read so it always equals the number
// of application rows for the job.
const jobColumns = `
	id, title, company, location, job_type, work_mode, category_id, description,
	skills, tags, requirements, benefits, salary_min, salary_max, salary_currency,
	application_deadline, status, posted_by, view_count, featured,
	(SELECT COUNT(*) FROM applications a WHERE a.job_id = jobs.id) AS application_count,
	created_at, updated_at`

// Create saves a new job posting.
func (r *JobRepo) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	status := models.JobStatusDraft
	if req.Status != "" {
		status = models.JobStatus(req.Status)
	}
	currency := req.SalaryCurrency
	if currency == "" {
		currency = "INR"
	}

	query := `
		INSERT INTO jobs (id, title, company, location, job_type, work_mode, category_id, description,
			skills, tags, requirements, benefits, salary_min, salary_max, salary_currency,
			application_deadline, status, posted_by, view_count, featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, 0, $19, NOW(), NOW())
		RETURNING ` + jobColumns

	rows, err := r.db.Query(ctx, query,
		uuid.New(),
		req.Title,
		req.Company,
		req.Location,
		req.JobType,
		req.WorkMode,
		req.CategoryID,
		req.Description,
		orEmptySlice(req.Skills),
		orEmptySlice(req.Tags),
		orEmptySlice(req.Requirements),
		orEmptySlice(req.Benefits),
		req.SalaryMin,
		req.SalaryMax,
		currency,
		req.ApplicationDeadline,
		status,
		req.PostedBy,
		req.Featured,
	)
	if err != nil {
		log.Printf("Error creating job: %v\n", err)
		return nil, mapPgError(err)
	}
	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[models.Job])
	if err != nil {
		mapped := mapPgError(err)
		if mapped == storage.ErrConflict {
			log.Printf("Error creating job: referenced row missing (category or poster): %v\n", err)
			return nil, storage.ErrConflict
		}
		log.Printf("Error creating job: %v\n", err)
		return nil, fmt.Errorf("failed to create job: %w", mapped)
	}

	log.Printf("Job created successfully with ID: %s", created.ID)
	return &created, nil
}

// GetByID retrieves a specific job by its ID.
func (r *JobRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		log.Printf("Error querying job by ID %s: %v\n", id, err)
		return nil, mapPgError(err)
	}
	job, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[models.Job])
	if err != nil {
		mapped := mapPgError(err)
		if mapped != storage.ErrNotFound {
			log.Printf("Error scanning job by ID %s: %v\n", id, err)
		}
		return nil, mapped
	}
	return &job, nil
}

// IncrementViewCount bumps the job's view counter by one. The increment is a
// single UPDATE so concurrent reads never lose a count.
func (r *JobRepo) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(ctx, `UPDATE jobs SET view_count = view_count + 1 WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error incrementing view count for job %s: %v\n", id, err)
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// Update applies a partial patch to a job, building SET clauses only for the
// fields present in the request.
func (r *JobRepo) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	setClauses := []string{}
	args := []any{}

	addSet := func(column string, value any) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Title != nil {
		addSet("title", *req.Title)
	}
	if req.Company != nil {
		addSet("company", *req.Company)
	}
	if req.Location != nil {
		addSet("location", *req.Location)
	}
	if req.JobType != nil {
		addSet("job_type", *req.JobType)
	}
	if req.WorkMode != nil {
		addSet("work_mode", *req.WorkMode)
	}
	if req.CategoryID != nil {
		addSet("category_id", *req.CategoryID)
	}
	if req.Description != nil {
		addSet("description", *req.Description)
	}
	if req.Skills != nil {
		addSet("skills", req.Skills)
	}
	if req.Tags != nil {
		addSet("tags", req.Tags)
	}
	if req.Requirements != nil {
		addSet("requirements", req.Requirements)
	}
	if req.Benefits != nil {
		addSet("benefits", req.Benefits)
	}
	if req.SalaryMin != nil {
		addSet("salary_min", *req.SalaryMin)
	}
	if req.SalaryMax != nil {
		addSet("salary_max", *req.SalaryMax)
	}
	if req.SalaryCurrency != nil {
		addSet("salary_currency", *req.SalaryCurrency)
	}
	if req.ApplicationDeadline != nil {
		addSet("application_deadline", *req.ApplicationDeadline)
	}
	if req.Status != nil {
		addSet("status", *req.Status)
	}
	if req.Featured != nil {
		addSet("featured", *req.Featured)
	}

	if len(setClauses) == 0 {
		return r.GetByID(ctx, req.ID)
	}

	args = append(args, req.ID)
	query := fmt.Sprintf(`UPDATE jobs SET %s, updated_at = NOW() WHERE id = $%d RETURNING %s`,
		strings.Join(setClauses, ", "), len(args), jobColumns)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error updating job %s: %v\n", req.ID, err)
		return nil, mapPgError(err)
	}
	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[models.Job])
	if err != nil {
		mapped := mapPgError(err)
		if mapped != storage.ErrNotFound {
			log.Printf("Error updating job %s: %v\n", req.ID, err)
		}
		return nil, mapped
	}
	return &updated, nil
}

// Delete removes a job. Its applications cascade at the schema level.
func (r *JobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting job %s: %v\n", id, err)
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	log.Printf("Job deleted successfully with ID: %s", id)
	return nil
}

// ListByPoster returns one page of the poster's jobs in every status,
// newest first, along with the unpaged total.
func (r *JobRepo) ListByPoster(ctx context.Context, posterID uuid.UUID, page, limit int) ([]models.Job, int, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	conditions := []string{}
	args := []any{}
	appendCondition(&conditions, &args, "posted_by = $%d", posterID)

	var total int
	if err := r.db.QueryRow(ctx, buildCountQuery("jobs", conditions), args...).Scan(&total); err != nil {
		log.Printf("Error counting jobs for poster %s: %v\n", posterID, err)
		return nil, 0, mapPgError(err)
	}

	query := buildListQuery(`SELECT `+jobColumns+` FROM jobs`, conditions, &args, "created_at DESC", (page-1)*limit, limit)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error listing jobs for poster %s: %v\n", posterID, err)
		return nil, 0, mapPgError(err)
	}
	jobs, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[models.Job])
	if err != nil {
		log.Printf("Error scanning jobs for poster %s: %v\n", posterID, err)
		return nil, 0, mapPgError(err)
	}
	return jobs, total, nil
}

// Search runs the published-job search and returns one page of matches plus
// the unpaged total. Callers authenticated as a poster pass excludePoster so
// their own listings stay out of the results.
func (r *JobRepo) Search(ctx context.Context, req *dto.SearchJobsRequest, excludePoster *uuid.UUID, now time.Time) ([]models.Job, int, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	conditions, args, orderBy := buildSearchQuery(req, excludePoster, now)

	var total int
	countArgs := args[:len(args):len(args)]
	if err := r.db.QueryRow(ctx, buildCountQuery("jobs", conditions), countArgs...).Scan(&total); err != nil {
		log.Printf("Error counting search results: %v\n", err)
		return nil, 0, mapPgError(err)
	}

	query := buildListQuery(`SELECT `+jobColumns+` FROM jobs`, conditions, &args, orderBy, (req.Page-1)*req.Limit, req.Limit)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error searching jobs: %v\n", err)
		return nil, 0, mapPgError(err)
	}
	jobs, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[models.Job])
	if err != nil {
		log.Printf("Error scanning search results: %v\n", err)
		return nil, 0, mapPgError(err)
	}
	return jobs, total, nil
}

// suggestionsQuery unions the prefix matches from every source field, each
// row tagged with where it came from.
const suggestionsQuery = `
	SELECT text, type FROM (
		SELECT DISTINCT title AS text, 'title' AS type
		FROM jobs WHERE status = 'Published' AND title ILIKE $1 || '%'
		UNION
		SELECT DISTINCT company AS text, 'company' AS type
		FROM jobs WHERE status = 'Published' AND company ILIKE $1 || '%'
		UNION
		SELECT DISTINCT skill AS text, 'skill' AS type
		FROM jobs, unnest(skills) AS skill
		WHERE status = 'Published' AND skill ILIKE $1 || '%'
		UNION
		SELECT DISTINCT location AS text, 'location' AS type
		FROM jobs WHERE status = 'Published' AND location ILIKE $1 || '%'
	) s
	ORDER BY text
	LIMIT $2`

// Suggestions returns type-ahead completions drawn from published job
// titles, companies, skills and locations.
func (r *JobRepo) Suggestions(ctx context.Context, prefix string, limit int) ([]dto.Suggestion, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, suggestionsQuery, prefix, limit)
	if err != nil {
		log.Printf("Error fetching suggestions: %v\n", err)
		return nil, mapPgError(err)
	}
	suggestions, err := pgx.CollectRows(rows, pgx.RowToStructByName[dto.Suggestion])
	if err != nil {
		log.Printf("Error scanning suggestions: %v\n", err)
		return nil, mapPgError(err)
	}
	return suggestions, nil
}

// Facets enumerates the distinct filter values across published jobs, each
// with its job count.
func (r *JobRepo) Facets(ctx context.Context) (*dto.SearchFiltersResponse, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	out := &dto.SearchFiltersResponse{
		Categories: []dto.CategoryFacet{},
		JobTypes:   []dto.FacetCount{},
		WorkModes:  []dto.FacetCount{},
		Locations:  []dto.FacetCount{},
		Companies:  []dto.FacetCount{},
		Skills:     []dto.FacetCount{},
		Tags:       []dto.FacetCount{},
	}

	catQuery := `
		SELECT c.id, c.name, COUNT(j.id) AS count
		FROM categories c
		JOIN jobs j ON j.category_id = c.id AND j.status = 'Published'
		GROUP BY c.id, c.name
		ORDER BY count DESC, c.name`
	rows, err := r.db.Query(ctx, catQuery)
	if err != nil {
		log.Printf("Error fetching category facets: %v\n", err)
		return nil, mapPgError(err)
	}
	out.Categories, err = pgx.CollectRows(rows, pgx.RowToStructByName[dto.CategoryFacet])
	if err != nil {
		return nil, mapPgError(err)
	}

	facetQueries := []struct {
		column string
		dest   *[]dto.FacetCount
		limit  int // 0 means unbounded
	}{
		{"job_type", &out.JobTypes, 0},
		{"work_mode", &out.WorkModes, 0},
		{"location", &out.Locations, 20},
		{"company", &out.Companies, 20},
	}
	for _, fq := range facetQueries {
		query := fmt.Sprintf(`
			SELECT %s AS value, COUNT(*) AS count
			FROM jobs WHERE status = 'Published' AND %s <> ''
			GROUP BY %s ORDER BY count DESC, value`, fq.column, fq.column, fq.column)
		if fq.limit > 0 {
			query += fmt.Sprintf(" LIMIT %d", fq.limit)
		}
		rows, err := r.db.Query(ctx, query)
		if err != nil {
			log.Printf("Error fetching %s facets: %v\n", fq.column, err)
			return nil, mapPgError(err)
		}
		*fq.dest, err = pgx.CollectRows(rows, pgx.RowToStructByName[dto.FacetCount])
		if err != nil {
			return nil, mapPgError(err)
		}
	}

	arrayFacets := []struct {
		column string
		dest   *[]dto.FacetCount
		limit  int
	}{
		{"skills", &out.Skills, 20},
		{"tags", &out.Tags, 15},
	}
	for _, fq := range arrayFacets {
		query := fmt.Sprintf(`
			SELECT v AS value, COUNT(*) AS count
			FROM jobs, unnest(%s) AS v
			WHERE status = 'Published'
			GROUP BY v ORDER BY count DESC, value LIMIT %d`, fq.column, fq.limit)
		rows, err := r.db.Query(ctx, query)
		if err != nil {
			log.Printf("Error fetching %s facets: %v\n", fq.column, err)
			return nil, mapPgError(err)
		}
		*fq.dest, err = pgx.CollectRows(rows, pgx.RowToStructByName[dto.FacetCount])
		if err != nil {
			return nil, mapPgError(err)
		}
	}

	salaryQuery := `
		SELECT COALESCE(MIN(salary_min), 0), COALESCE(MAX(salary_max), 0)
		FROM jobs WHERE status = 'Published'`
	if err := r.db.QueryRow(ctx, salaryQuery).Scan(&out.SalaryRange.Min, &out.SalaryRange.Max); err != nil {
		log.Printf("Error fetching salary range facet: %v\n", err)
		return nil, mapPgError(err)
	}

	return out, nil
}

// CountByPosterAndStatus tallies the poster's jobs per status.
func (r *JobRepo) CountByPosterAndStatus(ctx context.Context, posterID uuid.UUID) (map[models.JobStatus]int, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM jobs WHERE posted_by = $1 GROUP BY status`, posterID)
	if err != nil {
		log.Printf("Error counting jobs by status for poster %s: %v\n", posterID, err)
		return nil, mapPgError(err)
	}
	defer rows.Close()

	counts := map[models.JobStatus]int{}
	for rows.Next() {
		var status models.JobStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, mapPgError(err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err)
	}
	return counts, nil
}

// CountLiveByCategory counts the category's jobs still in Draft or Published.
func (r *JobRepo) CountLiveByCategory(ctx context.Context, categoryID uuid.UUID) (int, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var count int
	query := `SELECT COUNT(*) FROM jobs WHERE category_id = $1 AND status IN ('Draft', 'Published')`
	if err := r.db.QueryRow(ctx, query, categoryID).Scan(&count); err != nil {
		log.Printf("Error counting live jobs for category %s: %v\n", categoryID, err)
		return 0, mapPgError(err)
	}
	return count, nil
}

// CountPublishedByCategory counts the category's currently published jobs.
func (r *JobRepo) CountPublishedByCategory(ctx context.Context, categoryID uuid.UUID) (int, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var count int
	query := `SELECT COUNT(*) FROM jobs WHERE category_id = $1 AND status = 'Published'`
	if err := r.db.QueryRow(ctx, query, categoryID).Scan(&count); err != nil {
		log.Printf("Error counting published jobs for category %s: %v\n", categoryID, err)
		return 0, mapPgError(err)
	}
	return count, nil
}

// orEmptySlice keeps array columns NOT NULL by storing empty arrays.
func orEmptySlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
