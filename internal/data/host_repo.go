package data

import (
	"context"
	"database/sql"
	"strings"

	"github.com/stayhub/stayhub-web/internal/core"
	"github.com/stayhub/stayhub-web/internal/domain/model"
	"github.com/stayhub/stayhub-web/internal/ports"
)

var (
	_ core.HostRepository    = (*HostRepo)(nil)
	_ ports.ScopedIDResolver = (*HostRepo)(nil)
)

// HostRepo manages host records keyed by user id.
type HostRepo struct {
	DB *sql.DB
}

// NewHostRepo creates a new HostRepo.
func NewHostRepo(db *sql.DB) *HostRepo {
	return &HostRepo{DB: db}
}

// ResolveScopedID returns the host id owned by userID.
func (r *HostRepo) ResolveScopedID(ctx context.Context, userID string) (string, error) {
	var id string
	if err := queryRow(ctx, r.DB, &id, `SELECT id::text FROM hosts WHERE user_id = $1`, userID); err != nil {
		return "", mapErr(err, "host")
	}
	return id, nil
}

// Ensure returns the user's host record, creating it when missing. A non-empty
// displayName replaces the stored one.
func (r *HostRepo) Ensure(ctx context.Context, userID, displayName string) (*model.Host, error) {
	out, err := queryOne[model.Host](ctx, r.DB, `
		INSERT INTO hosts (user_id, display_name) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
			SET display_name = CASE WHEN EXCLUDED.display_name <> '' THEN EXCLUDED.display_name
			                        ELSE hosts.display_name END
		RETURNING id, user_id, display_name, created_at`,
		userID, strings.TrimSpace(displayName))
	if err != nil {
		return nil, mapErr(err, "host")
	}
	return &out, nil
}
