// Package postgres реализует репозитории keepnote поверх pgx.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Коды ошибок Postgres, которые репозитории переводят в доменные ошибки.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// PgxPoolInterface - подмножество pgxpool.Pool, нужное репозиториям. Реализуется pgxmock.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func pgErrorCode(err error) (string, string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName, true
	}
	return "", "", false
}

func isUniqueViolation(err error) bool {
	code, _, ok := pgErrorCode(err)
	return ok && code == pgUniqueViolation
}

// isForeignKeyViolation сообщает о нарушении внешнего ключа.
func isForeignKeyViolation(err error) bool {
	code, _, ok := pgErrorCode(err)
	return ok && code == pgForeignKeyViolation
}
