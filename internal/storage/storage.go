package storage

import (
	"context"
	"time"

	"jobboard-api/internal/models"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TxBeginner starts database transactions. *pgxpool.Pool satisfies it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	WithTx(tx pgx.Tx) UserRepository
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetResume(ctx context.Context, id uuid.UUID, resume *models.Resume) error
	GetResume(ctx context.Context, id uuid.UUID) (*models.Resume, error)
	ClearResume(ctx context.Context, id uuid.UUID) error
}

// TokenRepository tracks the active tokens issued per user. A token absent
// from the store is treated as logged out even when its signature verifies.
type TokenRepository interface {
	WithTx(tx pgx.Tx) TokenRepository
	Add(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error
	Exists(ctx context.Context, userID uuid.UUID, token string) (bool, error)
	Remove(ctx context.Context, userID uuid.UUID, token string) error
	RemoveAll(ctx context.Context, userID uuid.UUID) error
	RemoveExpired(ctx context.Context) (int64, error)
}

// JobRepository defines the interface for job posting data operations.
type JobRepository interface {
	Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
	Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByPoster(ctx context.Context, posterID uuid.UUID, page, limit int) ([]models.Job, int, error)
	Search(ctx context.Context, req *dto.SearchJobsRequest, excludePoster *uuid.UUID, now time.Time) ([]models.Job, int, error)
	Suggestions(ctx context.Context, prefix string, limit int) ([]dto.Suggestion, error)
	Facets(ctx context.Context) (*dto.SearchFiltersResponse, error)
	CountByPosterAndStatus(ctx context.Context, posterID uuid.UUID) (map[models.JobStatus]int, error)
	CountLiveByCategory(ctx context.Context, categoryID uuid.UUID) (int, error)
	CountPublishedByCategory(ctx context.Context, categoryID uuid.UUID) (int, error)
}

// ApplicationRepository defines the interface for job application data operations.
type ApplicationRepository interface {
	// Create inserts the application unless the applicant already applied to
	// the job. The insert and the duplicate check are a single statement, so
	// concurrent applies resolve to exactly one winner. Returns ErrConflict
	// for the loser.
	Create(ctx context.Context, app *models.Application) (*models.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, []models.ApplicantIdentity, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID, page, limit int) ([]models.Application, []models.JobSummary, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.Application, error)
	Exists(ctx context.Context, jobID, applicantID uuid.UUID) (bool, error)
	CountForPoster(ctx context.Context, posterID uuid.UUID) (int, error)
}

// CategoryRepository defines the interface for category data operations.
type CategoryRepository interface {
	Create(ctx context.Context, cat *models.Category) (*models.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetByName(ctx context.Context, name string) (*models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*models.Category, error)
	SetJobCount(ctx context.Context, id uuid.UUID, count int) (*models.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// EnsureDefault creates the default category when it does not exist yet.
	// Safe to call from concurrent startups.
	EnsureDefault(ctx context.Context) (*models.Category, error)
}

// SavedSearchRepository stores named searches per user.
type SavedSearchRepository interface {
	Create(ctx context.Context, userID uuid.UUID, name string, query *dto.SearchJobsRequest) (*dto.SavedSearchResponse, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]dto.SavedSearchResponse, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// ReportRepository aggregates dashboard figures across jobs and applications.
type ReportRepository interface {
	PosterStats(ctx context.Context, posterID uuid.UUID) (*dto.PosterStats, error)
	ApplicantApplications(ctx context.Context, applicantID uuid.UUID) ([]models.Application, []models.JobSummary, error)
	JobAnalytics(ctx context.Context, jobID uuid.UUID) (*dto.JobAnalyticsResponse, error)
}
