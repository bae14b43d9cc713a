// Package repo contains all database access logic for the hotel admin API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/hotel-admin/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Postgres SQLSTATE codes mapped to domain errors.
const (
	pgUniqueViolation    = "23505"
	pgForeignKeyMismatch = "23503"
	pgCheckViolation     = "23514"
	pgExclusionViolation = "23P01"
)

// mapPgError translates constraint violations into domain sentinels so the
// service and handler layers never see driver types.
func mapPgError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation, pgExclusionViolation:
		return errors.Join(domain.ErrConflict, err)
	case pgForeignKeyMismatch, pgCheckViolation:
		return errors.Join(domain.ErrValidation, err)
	}
	return err
}

// dateArg converts a domain.Date into a value pgx can bind to a DATE column.
// The zero date binds as NULL.
func dateArg(d domain.Date) pgtype.Date {
	if d.IsZero() {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: d.Time(), Valid: true}
}

// dateFrom converts a scanned DATE column back into a domain.Date.
func dateFrom(d pgtype.Date) domain.Date {
	if !d.Valid {
		return domain.Date{}
	}
	return domain.DateOf(d.Time)
}

// collect drains rows through scan, always returning a non-nil slice.
func collect[T any](rows pgx.Rows, scan func(scanner) (T, error)) ([]T, error) {
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
