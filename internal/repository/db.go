package repository

import (
	"context"
	"errors"

	models "github.com/aerodesk/skypatterns/internal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBConn is the slice of pgxpool.Pool the repositories need; pgxmock
// satisfies it in tests. Every write here is a single statement, so no
// transaction methods are carried.
type DBConn interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// mapPgError translates constraint violations into sentinel errors so the
// service layer never inspects SQLSTATE codes.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return models.ErrDuplicateCode
		case pgForeignKeyViolation:
			return models.ErrResourceInUse
		}
	}
	return err
}
