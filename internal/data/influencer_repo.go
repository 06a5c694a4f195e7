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
	_ core.InfluencerRepository = (*InfluencerRepo)(nil)
	_ ports.ScopedIDResolver    = (*InfluencerRepo)(nil)
)

// InfluencerRepo manages influencer records keyed by user id.
type InfluencerRepo struct {
	DB *sql.DB
}

// NewInfluencerRepo creates a new InfluencerRepo.
func NewInfluencerRepo(db *sql.DB) *InfluencerRepo {
	return &InfluencerRepo{DB: db}
}

// ResolveScopedID returns the influencer id owned by userID.
func (r *InfluencerRepo) ResolveScopedID(ctx context.Context, userID string) (string, error) {
	var id string
	if err := queryRow(ctx, r.DB, &id, `SELECT id::text FROM influencers WHERE user_id = $1`, userID); err != nil {
		return "", mapErr(err, "influencer")
	}
	return id, nil
}

// Ensure returns the user's influencer record, creating it when missing.
func (r *InfluencerRepo) Ensure(ctx context.Context, userID, handle string) (*model.Influencer, error) {
	out, err := queryOne[model.Influencer](ctx, r.DB, `
		INSERT INTO influencers (user_id, handle) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
			SET handle = CASE WHEN EXCLUDED.handle <> '' THEN EXCLUDED.handle ELSE influencers.handle END
		RETURNING id, user_id, handle, created_at`,
		userID, strings.TrimPrefix(strings.TrimSpace(handle), "@"))
	if err != nil {
		return nil, mapErr(err, "influencer")
	}
	return &out, nil
}
