package postgres

import (
	"context"
	"log"
	"time"

	"jobboard-api/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TokenRepo implements storage.TokenRepository using PostgreSQL. Each row is
// one live session token; logout deletes the row, which makes the token
// unusable even before its JWT expiry.
type TokenRepo struct {
	db Querier
}

// NewTokenRepo creates a new TokenRepo.
func NewTokenRepo(db *pgxpool.Pool) *TokenRepo {
	return &TokenRepo{db: db}
}

// WithTx creates a new TokenRepo bound to the transaction.
func (r *TokenRepo) WithTx(tx pgx.Tx) storage.TokenRepository {
	return &TokenRepo{db: tx}
}

// Compile-time check to ensure TokenRepo implements TokenRepository
var _ storage.TokenRepository = (*TokenRepo)(nil)

// Add records a freshly issued token for the user.
func (r *TokenRepo) Add(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO user_tokens (user_id, token, expires_at, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, token) DO NOTHING`
	_, err := r.db.Exec(ctx, query, userID, token, expiresAt)
	if err != nil {
		log.Printf("Error storing token for user %s: %v\n", userID, err)
		return mapPgError(err)
	}
	return nil
}

// Exists reports whether the token is still active for the user. Expired
// rows count as absent even before the sweeper removes them.
func (r *TokenRepo) Exists(ctx context.Context, userID uuid.UUID, token string) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `
		SELECT EXISTS (
			SELECT 1 FROM user_tokens
			WHERE user_id = $1 AND token = $2 AND expires_at > NOW()
		)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, token).Scan(&exists); err != nil {
		log.Printf("Error checking token for user %s: %v\n", userID, err)
		return false, mapPgError(err)
	}
	return exists, nil
}

// Remove invalidates a single token.
func (r *TokenRepo) Remove(ctx context.Context, userID uuid.UUID, token string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err := r.db.Exec(ctx, `DELETE FROM user_tokens WHERE user_id = $1 AND token = $2`, userID, token)
	if err != nil {
		log.Printf("Error removing token for user %s: %v\n", userID, err)
		return mapPgError(err)
	}
	return nil
}

// RemoveAll invalidates every session of the user.
func (r *TokenRepo) RemoveAll(ctx context.Context, userID uuid.UUID) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err := r.db.Exec(ctx, `DELETE FROM user_tokens WHERE user_id = $1`, userID)
	if err != nil {
		log.Printf("Error removing tokens for user %s: %v\n", userID, err)
		return mapPgError(err)
	}
	return nil
}

// RemoveExpired sweeps tokens past their expiry. Meant for a periodic job.
func (r *TokenRepo) RemoveExpired(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM user_tokens WHERE expires_at <= NOW()`)
	if err != nil {
		log.Printf("Error sweeping expired tokens: %v\n", err)
		return 0, mapPgError(err)
	}
	return tag.RowsAffected(), nil
}
