package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobboard-api/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgx methods the repos need. Both *pgxpool.Pool
// and pgx.Tx satisfy it, so a repo can run inside or outside a transaction.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const defaultQueryTimeout = 5 * time.Second

var queryTimeout = defaultQueryTimeout

// SetQueryTimeout sets the per-query deadline applied by the repos. Called
// once at startup with the configured database timeout; non-positive values
// are ignored.
func SetQueryTimeout(d time.Duration) {
	if d > 0 {
		queryTimeout = d
	}
}

// withTimeout applies the per-query deadline when the caller's context
// carries no deadline of its own.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, queryTimeout)
}

// mapPgError translates driver-level failures into storage sentinel errors.
func mapPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return storage.ErrConflict
		case "23503": // foreign_key_violation
			return storage.ErrConflict
		}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return storage.ErrUnavailable
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return storage.ErrUnavailable
	}
	return err
}

// appendCondition adds one parameterized condition, returning the new
// placeholder index.
func appendCondition(conditions *[]string, args *[]any, expr string, value any) {
	*args = append(*args, value)
	*conditions = append(*conditions, fmt.Sprintf(expr, len(*args)))
}

// buildListQuery assembles base + WHERE + ORDER BY + LIMIT/OFFSET.
func buildListQuery(baseQuery string, conditions []string, args *[]any, orderBy string, offset, limit int) string {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(baseQuery)

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}

	if orderBy != "" {
		queryBuilder.WriteString(" ORDER BY ")
		queryBuilder.WriteString(orderBy)
	}

	*args = append(*args, limit)
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", len(*args)))
	*args = append(*args, offset)
	queryBuilder.WriteString(fmt.Sprintf(" OFFSET $%d", len(*args)))

	return queryBuilder.String()
}

// buildCountQuery assembles a COUNT(*) over the same conditions.
func buildCountQuery(table string, conditions []string) string {
	query := "SELECT COUNT(*) FROM " + table
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	return query
}
