package postgres

import (
	"context"
	"errors"

	pgconnV1 "github.com/jackc/pgconn"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the slice of pgxpool.Pool the repositories actually use.
// pgxmock satisfies it too, so repositories stay testable without a live DB.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const uniqueViolationCode = "23505"

func IsPgUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}

	var pgErrV1 *pgconnV1.PgError
	if errors.As(err, &pgErrV1) {
		return pgErrV1.Code == uniqueViolationCode
	}

	return false
}
