package data

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stayhub/stayhub-web/internal/core"
	"github.com/stayhub/stayhub-web/internal/data/listquery"
	"github.com/stayhub/stayhub-web/internal/domain/model"
	apperrors "github.com/stayhub/stayhub-web/internal/errors"
)

var _ core.ReferralRepository = (*ReferralRepo)(nil)

const referralLinkColumns = `id, influencer_id, code, landing_path, created_at`

// ReferralRepo persists referral links and clicks and reports attribution.
// A reservation is attributed to a link when it carries the link's code and is not cancelled.
type ReferralRepo struct {
	DB *sql.DB
}

// NewReferralRepo creates a new ReferralRepo.
func NewReferralRepo(db *sql.DB) *ReferralRepo {
	return &ReferralRepo{DB: db}
}

// CreateLink inserts a link; a taken code is a Conflict on field "code".
func (r *ReferralRepo) CreateLink(
	ctx context.Context,
	req *model.CreateReferralLinkRequest,
) (*model.ReferralLink, error) {
	if req == nil {
		return nil, errors.New("create referral link request is required")
	}
	if !validID(req.InfluencerID) {
		return nil, notFound("influencer")
	}
	out, err := queryOne[model.ReferralLink](ctx, r.DB, `
		INSERT INTO referral_links (influencer_id, code, landing_path)
		VALUES ($1, $2, $3)
		RETURNING `+referralLinkColumns,
		req.InfluencerID, req.Code, req.LandingPath)
	if err != nil {
		mapped := mapErr(err, "referral link")
		if apperrors.IsConflict(mapped) {
			return nil, apperrors.ValidationField("code", "code is already taken")
		}
		return nil, mapped
	}
	return &out, nil
}

// GetLinkByCode resolves a code to its link.
func (r *ReferralRepo) GetLinkByCode(ctx context.Context, code string) (*model.ReferralLink, error) {
	out, err := queryOne[model.ReferralLink](ctx, r.DB,
		`SELECT `+referralLinkColumns+` FROM referral_links WHERE code = $1`, code)
	if err != nil {
		return nil, mapErr(err, "referral link")
	}
	return &out, nil
}

// ListLinkStats returns the influencer's links with click counts, newest first.
func (r *ReferralRepo) ListLinkStats(ctx context.Context, influencerID string) ([]model.ReferralLinkStats, error) {
	if !validID(influencerID) {
		return []model.ReferralLinkStats{}, nil
	}
	rows, err := queryAll[model.ReferralLinkStats](ctx, r.DB, `
		SELECT l.id, l.influencer_id, l.code, l.landing_path, l.created_at,
		       count(c.id)::int AS clicks
		FROM referral_links l
		LEFT JOIN referral_clicks c ON c.link_id = l.id
		WHERE l.influencer_id = $1
		GROUP BY l.id
		ORDER BY l.created_at DESC`, influencerID)
	if err != nil {
		return nil, mapErr(err, "referral link")
	}
	out := make([]model.ReferralLinkStats, len(rows))
	for i, s := range rows {
		out[i] = *s
	}
	return out, nil
}

// RecordClick stores one click.
func (r *ReferralRepo) RecordClick(ctx context.Context, click model.ReferralClick) error {
	if !validID(click.LinkID) {
		return notFound("referral link")
	}
	_, err := exec(ctx, r.DB, `
		INSERT INTO referral_clicks (link_id, referrer_host, created_at)
		VALUES ($1, $2, COALESCE($3, now()))`,
		click.LinkID, click.ReferrerHost, nullTime(click))
	return mapErr(err, "referral link")
}

// Totals counts attributed reservations and their revenue for one influencer.
func (r *ReferralRepo) Totals(ctx context.Context, influencerID string) (model.ReferralTotals, error) {
	if !validID(influencerID) {
		return model.ReferralTotals{}, nil
	}
	out, err := queryOne[model.ReferralTotals](ctx, r.DB, `
		SELECT count(res.id)::int AS reservations, COALESCE(sum(res.total_price), 0)::bigint AS revenue
		FROM reservations res
		JOIN referral_links l ON l.code = res.referral_code
		WHERE l.influencer_id = $1 AND res.status <> 'cancelled'`, influencerID)
	if err != nil {
		return model.ReferralTotals{}, mapErr(err, "referral link")
	}
	return out, nil
}

// Analytics reports per-influencer links, clicks and attributed revenue, highest revenue first.
func (r *ReferralRepo) Analytics(ctx context.Context, limit, offset int) ([]model.InfluencerAnalytics, error) {
	limit, offset = listquery.Clamp(limit, offset)
	rows, err := queryAll[model.InfluencerAnalytics](ctx, r.DB, `
		SELECT i.id::text AS influencer_id, i.handle,
		       (SELECT count(*) FROM referral_links l WHERE l.influencer_id = i.id)::int AS links,
		       (SELECT count(*) FROM referral_clicks c
		          JOIN referral_links l ON l.id = c.link_id
		         WHERE l.influencer_id = i.id)::int AS clicks,
		       (SELECT count(*) FROM reservations res
		          JOIN referral_links l ON l.code = res.referral_code
		         WHERE l.influencer_id = i.id AND res.status <> 'cancelled')::int AS reservations,
		       (SELECT COALESCE(sum(res.total_price), 0) FROM reservations res
		          JOIN referral_links l ON l.code = res.referral_code
		         WHERE l.influencer_id = i.id AND res.status <> 'cancelled')::bigint AS revenue
		FROM influencers i
		ORDER BY revenue DESC, clicks DESC, i.handle
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, mapErr(err, "influencer")
	}
	out := make([]model.InfluencerAnalytics, len(rows))
	for i, a := range rows {
		out[i] = *a
	}
	return out, nil
}

func nullTime(c model.ReferralClick) any {
	if c.CreatedAt.IsZero() {
		return nil
	}
	return c.CreatedAt
}
