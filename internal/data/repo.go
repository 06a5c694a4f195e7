// Package data implements the repository ports in internal/core on Postgres (pgx via
// database/sql) and the cache port on Redis.
package data

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stayhub/stayhub-web/internal/data/pgxutil"
	apperrors "github.com/stayhub/stayhub-web/internal/errors"
	"github.com/stayhub/stayhub-web/internal/ports"
)

// notFound wraps ports.ErrNotFound so callers can test with either errors.Is or
// apperrors.IsNotFound.
func notFound(what string) error {
	return apperrors.Wrap(ports.ErrNotFound, apperrors.ErrCodeNotFound, what+" not found")
}

// mapErr turns no-rows into notFound(what) and everything else into an AppError.
func mapErr(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return notFound(what)
	}
	return apperrors.MapDBError(err)
}

// validID reports whether id can name a UUID row; malformed ids are treated as missing
// instead of surfacing an invalid_text_representation error.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// queryOne runs a single-row query and collects it by column name.
func queryOne[T any](ctx context.Context, db *sql.DB, query string, args ...any) (T, error) {
	var out T
	err := pgxutil.WithPgxConn(ctx, db, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
		return err
	})
	return out, err
}

// queryAll runs a query and returns pointers to each collected row.
func queryAll[T any](ctx context.Context, db *sql.DB, query string, args ...any) ([]*T, error) {
	var out []*T
	err := pgxutil.WithPgxConn(ctx, db, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		out, err = pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[T])
		return err
	})
	return out, err
}

// queryInt scans a single integer (count(*), EXISTS cast) result.
func queryInt(ctx context.Context, db *sql.DB, query string, args ...any) (int, error) {
	var n int
	err := queryRow(ctx, db, &n, query, args...)
	return n, err
}

// exec runs a statement and returns the affected row count.
func exec(ctx context.Context, db *sql.DB, query string, args ...any) (int64, error) {
	var affected int64
	err := pgxutil.WithPgxConn(ctx, db, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, query, args...)
		if err != nil {
			return err
		}
		affected = ct.RowsAffected()
		return nil
	})
	return affected, err
}

// setClause accumulates "col = $n" fragments for partial updates.
type setClause struct {
	parts []string
	args  []any
}

func (s *setClause) add(column string, v any) {
	s.args = append(s.args, v)
	s.parts = append(s.parts, pgx.Identifier{column}.Sanitize()+" = $"+strconv.Itoa(len(s.args)))
}

// next returns the placeholder for the next positional argument appended by the caller.
func (s *setClause) next(v any) string {
	s.args = append(s.args, v)
	return "$" + strconv.Itoa(len(s.args))
}

func (s *setClause) String() string { return strings.Join(s.parts, ", ") }

// queryRow scans one row into dest.
func queryRow(ctx context.Context, db *sql.DB, dest any, query string, args ...any) error {
	return pgxutil.WithPgxConn(ctx, db, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, query, args...).Scan(dest)
	})
}
