package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/stayhub/stayhub-web/internal/core"
	"github.com/stayhub/stayhub-web/internal/domain/model"
	apperrors "github.com/stayhub/stayhub-web/internal/errors"
	"github.com/stayhub/stayhub-web/internal/util"
)

const (
	clickDedupeWindow = 30 * time.Minute
	analyticsCacheTTL = 5 * time.Minute
	generatedCodeLen  = 10
)

// InfluencerServiceOptions groups dependencies for InfluencerService.
type InfluencerServiceOptions struct {
	Referrals core.ReferralRepository
	// Cache is optional; without it clicks are not de-duplicated and analytics are not cached.
	Cache  core.CacheRepository
	Logger *slog.Logger
}

// InfluencerService manages referral links, click tracking and marketing analytics.
type InfluencerService struct {
	referrals core.ReferralRepository
	cache     core.CacheRepository
	logger    *slog.Logger
}

// NewInfluencerService constructs a new InfluencerService.
func NewInfluencerService(opts InfluencerServiceOptions) *InfluencerService {
	if opts.Referrals == nil {
		panic("NewInfluencerService: Referrals is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &InfluencerService{referrals: opts.Referrals, cache: opts.Cache, logger: logger}
}

// ListLinks returns the influencer's links with click counts.
func (s *InfluencerService) ListLinks(ctx context.Context, influencerID string) ([]model.ReferralLinkStats, error) {
	links, err := s.referrals.ListLinkStats(ctx, influencerID)
	if err != nil {
		return nil, err
	}
	if links == nil {
		links = []model.ReferralLinkStats{}
	}
	return links, nil
}

// CreateLink creates a link for influencerID. The landing path is forced to a same-site path.
func (s *InfluencerService) CreateLink(
	ctx context.Context,
	influencerID string,
	req model.CreateReferralLinkRequest,
) (*model.ReferralLink, error) {
	req.InfluencerID = influencerID
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	req.LandingPath = util.SafeRedirectPath(req.LandingPath, "/")
	if req.Code == "" {
		req.Code = newReferralCode()
	}
	return s.referrals.CreateLink(ctx, &req)
}

func newReferralCode() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:generatedCodeLen]
}

// Dashboard loads links and attribution totals concurrently.
func (s *InfluencerService) Dashboard(ctx context.Context, influencerID string) (*model.InfluencerDashboard, error) {
	var (
		links  []model.ReferralLinkStats
		totals model.ReferralTotals
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		links, err = s.ListLinks(gctx, influencerID)
		return err
	})
	g.Go(func() error {
		var err error
		totals, err = s.referrals.Totals(gctx, influencerID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load dashboard: %w", err)
	}

	d := &model.InfluencerDashboard{InfluencerID: influencerID, Links: links, Totals: totals}
	for _, l := range links {
		d.TotalClicks += l.Clicks
	}
	return d, nil
}

// ClickInput describes one visit through a referral link.
type ClickInput struct {
	Code    string
	Referer string
	// ClientKey identifies the visitor for de-duplication (e.g. client IP); it is hashed before use.
	ClientKey string
}

// RecordClick resolves a referral code, records the click and returns the landing path.
// Unknown codes are NotFound. Storage failures are logged, never surfaced: the visitor
// is still redirected.
func (s *InfluencerService) RecordClick(ctx context.Context, in ClickInput) (string, error) {
	if !model.ValidReferralCode(in.Code) {
		return "", apperrors.NotFound("referral link not found")
	}
	link, err := s.referrals.GetLinkByCode(ctx, in.Code)
	if err != nil {
		return "", err
	}
	landing := util.SafeRedirectPath(link.LandingPath, "/")

	if !s.firstClick(ctx, link.ID, in.ClientKey) {
		return landing, nil
	}
	click := model.ReferralClick{LinkID: link.ID, ReferrerHost: util.ReferrerDomain(in.Referer)}
	if err = s.referrals.RecordClick(ctx, click); err != nil {
		s.logger.WarnContext(ctx, "record referral click failed", "link_id", link.ID, "error", err)
	}
	return landing, nil
}

func (s *InfluencerService) firstClick(ctx context.Context, linkID, clientKey string) bool {
	if s.cache == nil || clientKey == "" {
		return true
	}
	sum := sha256.Sum256([]byte(linkID + "|" + clientKey))
	key := "referral:click:" + hex.EncodeToString(sum[:16])
	set, err := s.cache.SetIfNotExists(ctx, key, []byte("1"), clickDedupeWindow)
	if err != nil {
		s.logger.WarnContext(ctx, "click de-duplication unavailable", "error", err)
		return true
	}
	return set
}

// Analytics returns the admin marketing report, cached briefly when a cache is configured.
func (s *InfluencerService) Analytics(ctx context.Context, p util.Page) ([]model.InfluencerAnalytics, error) {
	key := fmt.Sprintf("analytics:influencers:%d:%d", p.Number, p.Size)
	if s.cache != nil {
		if b, err := s.cache.Get(ctx, key); err == nil && b != nil {
			var cached []model.InfluencerAnalytics
			if json.Unmarshal(b, &cached) == nil {
				return cached, nil
			}
		}
	}

	rows, err := s.referrals.Analytics(ctx, p.Limit(), p.Offset())
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []model.InfluencerAnalytics{}
	}
	if s.cache != nil {
		if b, mErr := json.Marshal(rows); mErr == nil {
			if setErr := s.cache.Set(ctx, key, b, analyticsCacheTTL); setErr != nil {
				s.logger.DebugContext(ctx, "analytics cache write failed", "error", setErr)
			}
		}
	}
	return rows, nil
}
