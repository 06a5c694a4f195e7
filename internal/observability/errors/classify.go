// Package errors classifies failures into short, bounded labels for logs and alerts.
package errors

import (
	"context"
	goerrors "errors"
	"net"
	"reflect"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sony/gobreaker"
	"github.com/stayhub/stayhub-web/internal/ports"
)

// Classify returns a label for err. Known conditions get a fixed name; anything else
// is named after its innermost concrete type.
func Classify(err error) string {
	if err == nil {
		return ""
	}
	var netErr net.Error
	var pgErr *pgconn.PgError
	switch {
	case goerrors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case goerrors.Is(err, context.Canceled):
		return "canceled"
	case goerrors.Is(err, gobreaker.ErrOpenState), goerrors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_open"
	case goerrors.Is(err, ports.ErrInvalidCredential):
		return "invalid_credential"
	case goerrors.Is(err, ports.ErrNotFound):
		return "not_found"
	case goerrors.As(err, &pgErr):
		return "postgres_" + pgErr.Code
	case goerrors.As(err, &netErr):
		if netErr.Timeout() {
			return "timeout"
		}
		return "network"
	}
	return typeName(err)
}

func typeName(err error) string {
	for {
		next := goerrors.Unwrap(err)
		if next == nil {
			break
		}
		err = next
	}
	t := reflect.TypeOf(err)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.String() == "" {
		return "unknown"
	}
	return strings.ReplaceAll(strings.ToLower(t.String()), ".", "_")
}
