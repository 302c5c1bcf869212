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

// CategoryRepo implements the storage.CategoryRepository interface using
// PostgreSQL.
type CategoryRepo struct {
	db Querier
}

// NewCategoryRepo creates a new CategoryRepo.
func NewCategoryRepo(db *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{db: db}
}


// Compile-time check to ensure CategoryRepo implements CategoryRepository
var _ storage.CategoryRepository = (*CategoryRepo)(nil)

const categoryColumns = `id, name, description, color, icon, is_active, job_count, created_by, created_at, updated_at`

// Create inserts a new category. Names are unique; a duplicate surfaces as
// ErrConflict.
func (r *CategoryRepo) Create(ctx context.Context, cat *models.Category) (*models.Category, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if cat.ID == uuid.Nil {
		cat.ID = uuid.New()
	}
	if cat.Color == "" {
		cat.Color = "#007bff"
	}

	query := `
		INSERT INTO categories (id, name, description, color, icon, is_active, job_count, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, TRUE, 0, $6, NOW(), NOW())
		RETURNING ` + categoryColumns

	rows, err := r.db.Query(ctx, query, cat.ID, cat.Name, cat.Description, cat.Color, cat.Icon, cat.CreatedBy)
	if err != nil {
		log.Printf("Error creating category: %v\n", err)
		return nil, mapPgError(err)
	}
	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		mapped := mapPgError(err)
		if mapped == storage.ErrConflict {
			log.Printf("Duplicate category name: %s\n", cat.Name)
			return nil, storage.ErrConflict
		}
		log.Printf("Error creating category: %v\n", err)
		return nil, mapped
	}

	log.Printf("Category created successfully with ID: %s", created.ID)
	return &created, nil
}

// GetByID retrieves a category by its ID.
func (r *CategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error querying category %s: %v\n", id, err)
		return nil, mapPgError(err)
	}
	cat, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		mapped := mapPgError(err)
		if mapped != storage.ErrNotFound {
			log.Printf("Error scanning category %s: %v\n", id, err)
		}
		return nil, mapped
	}
	return &cat, nil
}

// GetByName retrieves a category by its exact name.
func (r *CategoryRepo) GetByName(ctx context.Context, name string) (*models.Category, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT `+categoryColumns+` FROM categories WHERE name = $1`, name)
	if err != nil {
		log.Printf("Error querying category by name: %v\n", err)
		return nil, mapPgError(err)
	}
	cat, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		return nil, mapPgError(err)
	}
	return &cat, nil
}

// GetAll lists every category, active and most-used first.
func (r *CategoryRepo) GetAll(ctx context.Context) ([]models.Category, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY is_active DESC, job_count DESC, name`)
	if err != nil {
		log.Printf("Error listing categories: %v\n", err)
		return nil, mapPgError(err)
	}
	cats, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		log.Printf("Error scanning categories: %v\n", err)
		return nil, mapPgError(err)
	}
	return cats, nil
}

// Update applies a partial patch to a category.
func (r *CategoryRepo) Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	setClauses := []string{}
	args := []any{}

	addSet := func(column string, value any) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.Description != nil {
		addSet("description", *req.Description)
	}
	if req.Color != nil {
		addSet("color", *req.Color)
	}
	if req.Icon != nil {
		addSet("icon", *req.Icon)
	}
	if req.IsActive != nil {
		addSet("is_active", *req.IsActive)
	}

	if len(setClauses) == 0 {
		return r.GetByID(ctx, req.ID)
	}

	args = append(args, req.ID)
	query := fmt.Sprintf(`UPDATE categories SET %s, updated_at = NOW() WHERE id = $%d RETURNING %s`,
		strings.Join(setClauses, ", "), len(args), categoryColumns)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error updating category %s: %v\n", req.ID, err)
		return nil, mapPgError(err)
	}
	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		return nil, mapPgError(err)
	}
	return &updated, nil
}

// SetJobCount overwrites the cached published-job count.
func (r *CategoryRepo) SetJobCount(ctx context.Context, id uuid.UUID, count int) (*models.Category, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `UPDATE categories SET job_count = $1, updated_at = NOW() WHERE id = $2 RETURNING ` + categoryColumns
	rows, err := r.db.Query(ctx, query, count, id)
	if err != nil {
		log.Printf("Error setting job count for category %s: %v\n", id, err)
		return nil, mapPgError(err)
	}
	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		return nil, mapPgError(err)
	}
	return &updated, nil
}

// Delete removes a category. Jobs referencing it keep a NULL category_id.
func (r *CategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting category %s: %v\n", id, err)
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	log.Printf("Category deleted successfully with ID: %s", id)
	return nil
}

// EnsureDefault creates the default category if it is missing. The insert
// uses ON CONFLICT on the unique name, so concurrent startups converge on
// one row.
func (r *CategoryRepo) EnsureDefault(ctx context.Context) (*models.Category, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO categories (id, name, description, color, icon, is_active, job_count, created_by, created_at, updated_at)
		VALUES ($1, $2, 'Default category for uncategorized jobs', '#007bff', '', TRUE, 0, NULL, NOW(), NOW())
		ON CONFLICT (name) DO NOTHING`
	if _, err := r.db.Exec(ctx, query, uuid.New(), models.DefaultCategoryName); err != nil {
		log.Printf("Error ensuring default category: %v\n", err)
		return nil, mapPgError(err)
	}
	return r.GetByName(ctx, models.DefaultCategoryName)
}
