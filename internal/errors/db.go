package errors

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// reKeyField extracts the column list from "Key (field)=(value) already exists.".
var reKeyField = regexp.MustCompile(`Key \(([^)]+)\)=`)

// tableNames maps tables to the names callers see.
var tableNames = map[string]string{ //nolint:gochecknoglobals // read-only lookup
	"accommodations":  "accommodation",
	"reservations":    "reservation",
	"reviews":         "review",
	"notices":         "notice",
	"user_roles":      "role assignment",
	"hosts":           "host",
	"influencers":     "influencer",
	"referral_links":  "referral link",
	"referral_clicks": "referral click",
}

// MapDBError maps database errors to AppError instances:
//   - sql.ErrNoRows / pgx.ErrNoRows → NotFound
//   - unique violations → Conflict (with Field when known)
//   - exclusion violations (overlapping reservations) → Conflict
//   - foreign key violations → ForeignKey
//   - check / not-null violations → Validation
//   - context deadline / cancel → Timeout / Canceled
//
// Unrecognised errors are returned unchanged.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return Wrap(err, ErrCodeTimeout, "Request timed out. Please try again.")
	case errors.Is(err, context.Canceled):
		return Wrap(err, ErrCodeCanceled, "Request was canceled.")
	case errors.Is(err, sql.ErrNoRows), errors.Is(err, pgx.ErrNoRows):
		return Wrap(err, ErrCodeNotFound, "Resource not found")
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		e := Wrap(pgErr, ErrCodeConflict, "This value already exists.")
		e.Field = uniqueField(pgErr)
		return e
	case pgerrcode.ExclusionViolation:
		return Wrap(pgErr, ErrCodeConflict, "The requested dates are no longer available.")
	case pgerrcode.ForeignKeyViolation:
		return Wrap(pgErr, ErrCodeForeignKey, foreignKeyMessage(pgErr))
	case pgerrcode.CheckViolation:
		e := Wrap(pgErr, ErrCodeValidation, "Invalid data. Please check your input.")
		e.Field = pgErr.ColumnName
		return e
	case pgerrcode.NotNullViolation:
		e := Wrap(pgErr, ErrCodeValidation, "Required field is missing.")
		e.Field = pgErr.ColumnName
		return e
	default:
		return Wrap(pgErr, ErrCodeInternal, "A database error occurred. Please try again.")
	}
}

func uniqueField(pgErr *pgconn.PgError) string {
	if pgErr.ColumnName != "" {
		return pgErr.ColumnName
	}
	if m := reKeyField.FindStringSubmatch(pgErr.Detail); len(m) == 2 && !strings.Contains(m[1], ",") {
		return m[1]
	}
	return ""
}

func foreignKeyMessage(pgErr *pgconn.PgError) string {
	switch {
	case strings.Contains(pgErr.Detail, "is still referenced from table"):
		return "Cannot delete because this " + tableName(pgErr.TableName) + " is still in use."
	case strings.Contains(pgErr.Detail, "is not present in table"):
		return "The referenced " + referencedTable(pgErr.Detail) + " does not exist."
	default:
		return "Cannot complete operation because a related record is missing or in use."
	}
}

func referencedTable(detail string) string {
	_, after, ok := strings.Cut(detail, "is not present in table ")
	if !ok {
		return "record"
	}
	return tableName(strings.Trim(strings.TrimSuffix(after, "."), `"`))
}

func tableName(t string) string {
	t = strings.ToLower(strings.TrimSpace(t))
	if n, ok := tableNames[t]; ok {
		return n
	}
	if t == "" {
		return "record"
	}
	return strings.ReplaceAll(t, "_", " ")
}
