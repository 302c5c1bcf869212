package services

import (
	"context"
	"time"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

// Hand-written testify mocks for the storage interfaces.

var (
	_ storage.UserRepository        = (*mockUserRepo)(nil)
	_ storage.TokenRepository       = (*mockTokenRepo)(nil)
	_ storage.JobRepository         = (*mockJobRepo)(nil)
	_ storage.ApplicationRepository = (*mockApplicationRepo)(nil)
	_ storage.CategoryRepository    = (*mockCategoryRepo)(nil)
	_ storage.SavedSearchRepository = (*mockSavedSearchRepo)(nil)
	_ storage.ReportRepository      = (*mockReportRepo)(nil)
)

type mockUserRepo struct{ mock.Mock }

// WithTx returns the mock itself so expectations set on it keep matching
// inside transactional flows.
func (m *mockUserRepo) WithTx(tx pgx.Tx) storage.UserRepository {
	return m
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	created, _ := args.Get(0).(*models.User)
	return created, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserRepo) SetResume(ctx context.Context, id uuid.UUID, resume *models.Resume) error {
	return m.Called(ctx, id, resume).Error(0)
}

func (m *mockUserRepo) GetResume(ctx context.Context, id uuid.UUID) (*models.Resume, error) {
	args := m.Called(ctx, id)
	resume, _ := args.Get(0).(*models.Resume)
	return resume, args.Error(1)
}

func (m *mockUserRepo) ClearResume(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockTokenRepo struct{ mock.Mock }

func (m *mockTokenRepo) WithTx(tx pgx.Tx) storage.TokenRepository {
	return m
}

func (m *mockTokenRepo) Add(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error {
	return m.Called(ctx, userID, token, expiresAt).Error(0)
}

func (m *mockTokenRepo) Exists(ctx context.Context, userID uuid.UUID, token string) (bool, error) {
	args := m.Called(ctx, userID, token)
	return args.Bool(0), args.Error(1)
}

func (m *mockTokenRepo) Remove(ctx context.Context, userID uuid.UUID, token string) error {
	return m.Called(ctx, userID, token).Error(0)
}

func (m *mockTokenRepo) RemoveAll(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *mockTokenRepo) RemoveExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockJobRepo struct{ mock.Mock }

func (m *mockJobRepo) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	job, _ := args.Get(0).(*models.Job)
	return job, args.Error(1)
}

func (m *mockJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	args := m.Called(ctx, id)
	job, _ := args.Get(0).(*models.Job)
	return job, args.Error(1)
}

func (m *mockJobRepo) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockJobRepo) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	job, _ := args.Get(0).(*models.Job)
	return job, args.Error(1)
}

func (m *mockJobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockJobRepo) ListByPoster(ctx context.Context, posterID uuid.UUID, page, limit int) ([]models.Job, int, error) {
	args := m.Called(ctx, posterID, page, limit)
	jobs, _ := args.Get(0).([]models.Job)
	return jobs, args.Int(1), args.Error(2)
}

func (m *mockJobRepo) Search(ctx context.Context, req *dto.SearchJobsRequest, excludePoster *uuid.UUID, now time.Time) ([]models.Job, int, error) {
	args := m.Called(ctx, req, excludePoster, now)
	jobs, _ := args.Get(0).([]models.Job)
	return jobs, args.Int(1), args.Error(2)
}

func (m *mockJobRepo) Suggestions(ctx context.Context, prefix string, limit int) ([]dto.Suggestion, error) {
	args := m.Called(ctx, prefix, limit)
	suggestions, _ := args.Get(0).([]dto.Suggestion)
	return suggestions, args.Error(1)
}

func (m *mockJobRepo) Facets(ctx context.Context) (*dto.SearchFiltersResponse, error) {
	args := m.Called(ctx)
	filters, _ := args.Get(0).(*dto.SearchFiltersResponse)
	return filters, args.Error(1)
}

func (m *mockJobRepo) CountByPosterAndStatus(ctx context.Context, posterID uuid.UUID) (map[models.JobStatus]int, error) {
	args := m.Called(ctx, posterID)
	counts, _ := args.Get(0).(map[models.JobStatus]int)
	return counts, args.Error(1)
}

func (m *mockJobRepo) CountLiveByCategory(ctx context.Context, categoryID uuid.UUID) (int, error) {
	args := m.Called(ctx, categoryID)
	return args.Int(0), args.Error(1)
}

func (m *mockJobRepo) CountPublishedByCategory(ctx context.Context, categoryID uuid.UUID) (int, error) {
	args := m.Called(ctx, categoryID)
	return args.Int(0), args.Error(1)
}

type mockApplicationRepo struct{ mock.Mock }

func (m *mockApplicationRepo) Create(ctx context.Context, app *models.Application) (*models.Application, error) {
	args := m.Called(ctx, app)
	created, _ := args.Get(0).(*models.Application)
	return created, args.Error(1)
}

func (m *mockApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	args := m.Called(ctx, id)
	app, _ := args.Get(0).(*models.Application)
	return app, args.Error(1)
}

func (m *mockApplicationRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, []models.ApplicantIdentity, error) {
	args := m.Called(ctx, jobID)
	apps, _ := args.Get(0).([]models.Application)
	applicants, _ := args.Get(1).([]models.ApplicantIdentity)
	return apps, applicants, args.Error(2)
}

func (m *mockApplicationRepo) ListByApplicant(ctx context.Context, applicantID uuid.UUID, page, limit int) ([]models.Application, []models.JobSummary, int, error) {
	args := m.Called(ctx, applicantID, page, limit)
	apps, _ := args.Get(0).([]models.Application)
	jobs, _ := args.Get(1).([]models.JobSummary)
	return apps, jobs, args.Int(2), args.Error(3)
}

func (m *mockApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.Application, error) {
	args := m.Called(ctx, id, status)
	app, _ := args.Get(0).(*models.Application)
	return app, args.Error(1)
}

func (m *mockApplicationRepo) Exists(ctx context.Context, jobID, applicantID uuid.UUID) (bool, error) {
	args := m.Called(ctx, jobID, applicantID)
	return args.Bool(0), args.Error(1)
}

func (m *mockApplicationRepo) CountForPoster(ctx context.Context, posterID uuid.UUID) (int, error) {
	args := m.Called(ctx, posterID)
	return args.Int(0), args.Error(1)
}

type mockCategoryRepo struct{ mock.Mock }

func (m *mockCategoryRepo) Create(ctx context.Context, cat *models.Category) (*models.Category, error) {
	args := m.Called(ctx, cat)
	created, _ := args.Get(0).(*models.Category)
	return created, args.Error(1)
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	args := m.Called(ctx, id)
	cat, _ := args.Get(0).(*models.Category)
	return cat, args.Error(1)
}

func (m *mockCategoryRepo) GetByName(ctx context.Context, name string) (*models.Category, error) {
	args := m.Called(ctx, name)
	cat, _ := args.Get(0).(*models.Category)
	return cat, args.Error(1)
}

func (m *mockCategoryRepo) GetAll(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	cats, _ := args.Get(0).([]models.Category)
	return cats, args.Error(1)
}

func (m *mockCategoryRepo) Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, req)
	cat, _ := args.Get(0).(*models.Category)
	return cat, args.Error(1)
}

func (m *mockCategoryRepo) SetJobCount(ctx context.Context, id uuid.UUID, count int) (*models.Category, error) {
	args := m.Called(ctx, id, count)
	cat, _ := args.Get(0).(*models.Category)
	return cat, args.Error(1)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCategoryRepo) EnsureDefault(ctx context.Context) (*models.Category, error) {
	args := m.Called(ctx)
	cat, _ := args.Get(0).(*models.Category)
	return cat, args.Error(1)
}

type mockSavedSearchRepo struct{ mock.Mock }

func (m *mockSavedSearchRepo) Create(ctx context.Context, userID uuid.UUID, name string, query *dto.SearchJobsRequest) (*dto.SavedSearchResponse, error) {
	args := m.Called(ctx, userID, name, query)
	saved, _ := args.Get(0).(*dto.SavedSearchResponse)
	return saved, args.Error(1)
}

func (m *mockSavedSearchRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]dto.SavedSearchResponse, error) {
	args := m.Called(ctx, userID)
	searches, _ := args.Get(0).([]dto.SavedSearchResponse)
	return searches, args.Error(1)
}

func (m *mockSavedSearchRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

type mockReportRepo struct{ mock.Mock }

func (m *mockReportRepo) PosterStats(ctx context.Context, posterID uuid.UUID) (*dto.PosterStats, error) {
	args := m.Called(ctx, posterID)
	stats, _ := args.Get(0).(*dto.PosterStats)
	return stats, args.Error(1)
}

func (m *mockReportRepo) ApplicantApplications(ctx context.Context, applicantID uuid.UUID) ([]models.Application, []models.JobSummary, error) {
	args := m.Called(ctx, applicantID)
	apps, _ := args.Get(0).([]models.Application)
	jobs, _ := args.Get(1).([]models.JobSummary)
	return apps, jobs, args.Error(2)
}

func (m *mockReportRepo) JobAnalytics(ctx context.Context, jobID uuid.UUID) (*dto.JobAnalyticsResponse, error) {
	args := m.Called(ctx, jobID)
	analytics, _ := args.Get(0).(*dto.JobAnalyticsResponse)
	return analytics, args.Error(1)
}

// stubTx satisfies pgx.Tx and records whether the transaction ended in a
// commit or a rollback. Query methods are never reached because the mocked
// repos ignore the bound transaction.
type stubTx struct {
	committed  bool
	rolledBack bool
}

var _ pgx.Tx = (*stubTx)(nil)

func (t *stubTx) Begin(ctx context.Context) (pgx.Tx, error) {
	return t, nil
}

func (t *stubTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *stubTx) Rollback(ctx context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

func (t *stubTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}

func (t *stubTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	return nil
}

func (t *stubTx) LargeObjects() pgx.LargeObjects {
	return pgx.LargeObjects{}
}

func (t *stubTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}

func (t *stubTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (t *stubTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (t *stubTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (t *stubTx) Conn() *pgx.Conn {
	return nil
}

// stubTxBeginner hands out stub transactions and keeps the last one so tests
// can assert on its final state.
type stubTxBeginner struct {
	beginErr error
	lastTx   *stubTx
}

var _ storage.TxBeginner = (*stubTxBeginner)(nil)

func (b *stubTxBeginner) Begin(ctx context.Context) (pgx.Tx, error) {
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	b.lastTx = &stubTx{}
	return b.lastTx, nil
}
