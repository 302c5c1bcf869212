package postgres

import (
	"context"
	"fmt"
	"log"
	"strings"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepo implements the storage.UserRepository interface using PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

// WithTx creates a new UserRepo bound to the transaction.
func (r *UserRepo) WithTx(tx pgx.Tx) storage.UserRepository {
	return &UserRepo{db: tx}
}

// Compile-time check to ensure UserRepo implements UserRepository
var _ storage.UserRepository = (*UserRepo)(nil)

const userColumns = `id, firstname, lastname, email, password_hash, role, phone, location, bio, skills, profile_picture, created_at, updated_at`

// GetByID retrieves a user by their ID.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		log.Printf("Error querying user by ID %s: %v\n", id, err)
		return nil, mapPgError(err)
	}
	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[models.User])
	if err != nil {
		mapped := mapPgError(err)
		if mapped != storage.ErrNotFound {
			log.Printf("Error scanning user by ID %s: %v\n", id, err)
		}
		return nil, mapped
	}
	return &user, nil
}

// GetByEmail retrieves a user by email. Used during login and signup.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		log.Printf("Error querying user by email: %v\n", err)
		return nil, mapPgError(err)
	}
	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[models.User])
	if err != nil {
		mapped := mapPgError(err)
		if mapped != storage.ErrNotFound {
			log.Printf("Error scanning user by email: %v\n", err)
		}
		return nil, mapped
	}
	return &user, nil
}

// Create inserts a new user row. Email uniqueness is enforced by the schema,
// so a duplicate signup surfaces as ErrConflict.
func (r *UserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.Skills == nil {
		user.Skills = []string{}
	}

	query := `
		INSERT INTO users (id, firstname, lastname, email, password_hash, role, phone, location, bio, skills, profile_picture, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING ` + userColumns

	rows, err := r.db.Query(ctx, query,
		user.ID,
		user.Firstname,
		user.Lastname,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.Phone,
		user.Location,
		user.Bio,
		user.Skills,
		user.ProfilePicture,
	)
	if err != nil {
		log.Printf("Error creating user: %v\n", err)
		return nil, mapPgError(err)
	}
	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[models.User])
	if err != nil {
		mapped := mapPgError(err)
		if mapped == storage.ErrConflict {
			log.Printf("Duplicate email on user creation: %s\n", user.Email)
			return nil, storage.ErrConflict
		}
		log.Printf("Error creating user: %v\n", err)
		return nil, fmt.Errorf("failed to create user: %w", mapped)
	}

	log.Printf("User created successfully with ID: %s", created.ID)
	return &created, nil
}

// Update applies a partial profile patch, building SET clauses only for the
// fields present in the request.
func (r *UserRepo) Update(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	setClauses := []string{}
	args := []any{}

	addSet := func(column string, value any) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Firstname != nil {
		addSet("firstname", *req.Firstname)
	}
	if req.Lastname != nil {
		addSet("lastname", *req.Lastname)
	}
	if req.Phone != nil {
		addSet("phone", *req.Phone)
	}
	if req.Location != nil {
		addSet("location", *req.Location)
	}
	if req.Bio != nil {
		addSet("bio", *req.Bio)
	}
	if req.Skills != nil {
		addSet("skills", *req.Skills)
	}
	if req.ProfilePicture != nil {
		addSet("profile_picture", *req.ProfilePicture)
	}

	if len(setClauses) == 0 {
		return r.GetByID(ctx, req.UserID)
	}

	args = append(args, req.UserID)
	query := fmt.Sprintf(`UPDATE users SET %s, updated_at = NOW() WHERE id = $%d RETURNING %s`,
		strings.Join(setClauses, ", "), len(args), userColumns)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error updating user %s: %v\n", req.UserID, err)
		return nil, mapPgError(err)
	}
	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[models.User])
	if err != nil {
		return nil, mapPgError(err)
	}
	return &updated, nil
}

// UpdatePassword replaces the stored password hash.
func (r *UserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(ctx, `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`, passwordHash, id)
	if err != nil {
		log.Printf("Error updating password for user %s: %v\n", id, err)
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// Delete removes a user. Dependent rows (jobs, applications, tokens) cascade
// at the schema level.
func (r *UserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting user %s: %v\n", id, err)
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	log.Printf("User deleted successfully with ID: %s", id)
	return nil
}

// SetResume stores the uploaded resume blob and its metadata.
func (r *UserRepo) SetResume(ctx context.Context, id uuid.UUID, resume *models.Resume) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `
		UPDATE users
		SET resume_name = $1, resume_data = $2, resume_content_type = $3, resume_size = $4, resume_uploaded_at = $5, updated_at = NOW()
		WHERE id = $6`
	tag, err := r.db.Exec(ctx, query, resume.Name, resume.Data, resume.ContentType, resume.Size, resume.UploadedAt, id)
	if err != nil {
		log.Printf("Error storing resume for user %s: %v\n", id, err)
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// GetResume loads the resume blob. ErrNotFound covers both a missing user
// and a user without an upload.
func (r *UserRepo) GetResume(ctx context.Context, id uuid.UUID) (*models.Resume, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `
		SELECT resume_name, resume_data, resume_content_type, resume_size, resume_uploaded_at
		FROM users
		WHERE id = $1 AND resume_data IS NOT NULL`
	row := r.db.QueryRow(ctx, query, id)

	var resume models.Resume
	err := row.Scan(&resume.Name, &resume.Data, &resume.ContentType, &resume.Size, &resume.UploadedAt)
	if err != nil {
		return nil, mapPgError(err)
	}
	return &resume, nil
}

// ClearResume removes a stored resume.
func (r *UserRepo) ClearResume(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `
		UPDATE users
		SET resume_name = NULL, resume_data = NULL, resume_content_type = NULL, resume_size = NULL, resume_uploaded_at = NULL, updated_at = NOW()
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		log.Printf("Error clearing resume for user %s: %v\n", id, err)
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
