package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SavedSearchRepo implements storage.SavedSearchRepository using PostgreSQL.
// The filter set is stored as JSONB so the search schema can grow without
// migrations here.
type SavedSearchRepo struct {
	db Querier
}

// NewSavedSearchRepo creates a new SavedSearchRepo.
func NewSavedSearchRepo(db *pgxpool.Pool) *SavedSearchRepo {
	return &SavedSearchRepo{db: db}
}

// Compile-time check to ensure SavedSearchRepo implements SavedSearchRepository
var _ storage.SavedSearchRepository = (*SavedSearchRepo)(nil)

// Create stores a named search for the user.
func (r *SavedSearchRepo) Create(ctx context.Context, userID uuid.UUID, name string, query *dto.SearchJobsRequest) (*dto.SavedSearchResponse, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	payload, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("failed to encode saved search: %w", err)
	}

	insert := `
		INSERT INTO saved_searches (id, user_id, name, query, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, name, query, created_at`

	row := r.db.QueryRow(ctx, insert, uuid.New(), userID, name, payload)

	var out dto.SavedSearchResponse
	var raw []byte
	if err := row.Scan(&out.ID, &out.Name, &raw, &out.CreatedAt); err != nil {
		mapped := mapPgError(err)
		if mapped == storage.ErrConflict {
			log.Printf("Duplicate saved search name %q for user %s\n", name, userID)
			return nil, storage.ErrConflict
		}
		log.Printf("Error saving search for user %s: %v\n", userID, err)
		return nil, mapped
	}
	if err := json.Unmarshal(raw, &out.Query); err != nil {
		return nil, fmt.Errorf("failed to decode saved search: %w", err)
	}
	return &out, nil
}

// ListByUser returns the user's saved searches, newest first.
func (r *SavedSearchRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]dto.SavedSearchResponse, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT id, name, query, created_at FROM saved_searches WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		log.Printf("Error listing saved searches for user %s: %v\n", userID, err)
		return nil, mapPgError(err)
	}
	defer rows.Close()

	searches := []dto.SavedSearchResponse{}
	for rows.Next() {
		var s dto.SavedSearchResponse
		var raw []byte
		if err := rows.Scan(&s.ID, &s.Name, &raw, &s.CreatedAt); err != nil {
			return nil, mapPgError(err)
		}
		if err := json.Unmarshal(raw, &s.Query); err != nil {
			return nil, fmt.Errorf("failed to decode saved search %s: %w", s.ID, err)
		}
		searches = append(searches, s)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err)
	}
	return searches, nil
}

// Delete removes a saved search owned by the user.
func (r *SavedSearchRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM saved_searches WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		log.Printf("Error deleting saved search %s: %v\n", id, err)
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
