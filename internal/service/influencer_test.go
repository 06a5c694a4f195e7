package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stayhub/stayhub-web/internal/domain/model"
	apperrors "github.com/stayhub/stayhub-web/internal/errors"
	"github.com/stayhub/stayhub-web/internal/mocks"
	"github.com/stayhub/stayhub-web/internal/util"
)

type influencerDeps struct {
	referrals *mocks.MockReferralRepository
	cache     *mocks.MockCacheRepository
	svc       *InfluencerService
}

func newInfluencerService(t *testing.T) influencerDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := influencerDeps{
		referrals: mocks.NewMockReferralRepository(ctrl),
		cache:     mocks.NewMockCacheRepository(ctrl),
	}
	d.svc = NewInfluencerService(InfluencerServiceOptions{Referrals: d.referrals, Cache: d.cache})
	return d
}

func TestInfluencerService_CreateLink(t *testing.T) {
	t.Parallel()

	t.Run("generated code and sanitized landing path", func(t *testing.T) {
		d := newInfluencerService(t)
		d.referrals.EXPECT().CreateLink(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req *model.CreateReferralLinkRequest) (*model.ReferralLink, error) {
				assert.Equal(t, "i-1", req.InfluencerID)
				assert.Equal(t, "/", req.LandingPath)
				assert.Len(t, req.Code, generatedCodeLen)
				assert.True(t, model.ValidReferralCode(req.Code))
				return &model.ReferralLink{ID: "l-1", Code: req.Code}, nil
			})

		_, err := d.svc.CreateLink(context.Background(), "i-1", model.CreateReferralLinkRequest{
			InfluencerID: "spoofed", LandingPath: "https://evil.example/phish",
		})
		require.NoError(t, err)
	})

	t.Run("custom code", func(t *testing.T) {
		d := newInfluencerService(t)
		d.referrals.EXPECT().CreateLink(gomock.Any(), &model.CreateReferralLinkRequest{
			InfluencerID: "i-1", Code: "jeju-summer", LandingPath: "/accommodations?region=Jeju",
		}).Return(&model.ReferralLink{ID: "l-2"}, nil)

		_, err := d.svc.CreateLink(context.Background(), "i-1", model.CreateReferralLinkRequest{
			Code: "jeju-summer", LandingPath: "/accommodations?region=Jeju",
		})
		require.NoError(t, err)
	})

	t.Run("invalid code", func(t *testing.T) {
		d := newInfluencerService(t)
		_, err := d.svc.CreateLink(context.Background(), "i-1", model.CreateReferralLinkRequest{Code: "no spaces"})
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestInfluencerService_Dashboard(t *testing.T) {
	t.Parallel()
	d := newInfluencerService(t)
	d.referrals.EXPECT().ListLinkStats(gomock.Any(), "i-1").Return([]model.ReferralLinkStats{
		{ReferralLink: model.ReferralLink{ID: "l-1"}, Clicks: 4},
		{ReferralLink: model.ReferralLink{ID: "l-2"}, Clicks: 6},
	}, nil)
	d.referrals.EXPECT().Totals(gomock.Any(), "i-1").Return(model.ReferralTotals{Reservations: 2, Revenue: 340000}, nil)

	got, err := d.svc.Dashboard(context.Background(), "i-1")

	require.NoError(t, err)
	assert.Equal(t, 10, got.TotalClicks)
	assert.Equal(t, int64(340000), got.Totals.Revenue)
	assert.Len(t, got.Links, 2)
}

func TestInfluencerService_Dashboard_Error(t *testing.T) {
	t.Parallel()
	d := newInfluencerService(t)
	boom := errors.New("db down")
	d.referrals.EXPECT().ListLinkStats(gomock.Any(), "i-1").Return(nil, nil)
	d.referrals.EXPECT().Totals(gomock.Any(), "i-1").Return(model.ReferralTotals{}, boom)

	_, err := d.svc.Dashboard(context.Background(), "i-1")

	assert.ErrorIs(t, err, boom)
}

func TestInfluencerService_RecordClick(t *testing.T) {
	t.Parallel()
	link := &model.ReferralLink{ID: "l-1", Code: "summer24", LandingPath: "/accommodations/a-1"}

	t.Run("first click is recorded", func(t *testing.T) {
		d := newInfluencerService(t)
		d.referrals.EXPECT().GetLinkByCode(gomock.Any(), "summer24").Return(link, nil)
		d.cache.EXPECT().SetIfNotExists(gomock.Any(), gomock.Any(), []byte("1"), clickDedupeWindow).DoAndReturn(
			func(_ context.Context, key string, _ []byte, _ time.Duration) (bool, error) {
				assert.True(t, strings.HasPrefix(key, "referral:click:"))
				assert.NotContains(t, key, "203.0.113.7")
				return true, nil
			})
		d.referrals.EXPECT().RecordClick(gomock.Any(), model.ReferralClick{LinkID: "l-1", ReferrerHost: "instagram.com"}).Return(nil)

		landing, err := d.svc.RecordClick(context.Background(), ClickInput{
			Code: "summer24", Referer: "https://l.instagram.com/?u=x", ClientKey: "203.0.113.7",
		})
		require.NoError(t, err)
		assert.Equal(t, "/accommodations/a-1", landing)
	})

	t.Run("repeat click is not recorded", func(t *testing.T) {
		d := newInfluencerService(t)
		d.referrals.EXPECT().GetLinkByCode(gomock.Any(), "summer24").Return(link, nil)
		d.cache.EXPECT().SetIfNotExists(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		landing, err := d.svc.RecordClick(context.Background(), ClickInput{Code: "summer24", ClientKey: "203.0.113.7"})
		require.NoError(t, err)
		assert.Equal(t, "/accommodations/a-1", landing)
	})

	t.Run("cache failure still records", func(t *testing.T) {
		d := newInfluencerService(t)
		d.referrals.EXPECT().GetLinkByCode(gomock.Any(), "summer24").Return(link, nil)
		d.cache.EXPECT().SetIfNotExists(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))
		d.referrals.EXPECT().RecordClick(gomock.Any(), gomock.Any()).Return(nil)

		_, err := d.svc.RecordClick(context.Background(), ClickInput{Code: "summer24", ClientKey: "203.0.113.7"})
		require.NoError(t, err)
	})

	t.Run("record failure still redirects", func(t *testing.T) {
		d := newInfluencerService(t)
		d.referrals.EXPECT().GetLinkByCode(gomock.Any(), "summer24").Return(link, nil)
		d.referrals.EXPECT().RecordClick(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		landing, err := d.svc.RecordClick(context.Background(), ClickInput{Code: "summer24"})
		require.NoError(t, err)
		assert.Equal(t, "/accommodations/a-1", landing)
	})

	t.Run("malformed code skips lookup", func(t *testing.T) {
		d := newInfluencerService(t)
		_, err := d.svc.RecordClick(context.Background(), ClickInput{Code: "../../etc"})
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("unsafe stored landing path", func(t *testing.T) {
		d := newInfluencerService(t)
		bad := &model.ReferralLink{ID: "l-9", LandingPath: "//evil.example"}
		d.referrals.EXPECT().GetLinkByCode(gomock.Any(), "legacy").Return(bad, nil)
		d.referrals.EXPECT().RecordClick(gomock.Any(), gomock.Any()).Return(nil)

		landing, err := d.svc.RecordClick(context.Background(), ClickInput{Code: "legacy"})
		require.NoError(t, err)
		assert.Equal(t, "/", landing)
	})
}

func TestInfluencerService_Analytics(t *testing.T) {
	t.Parallel()
	rows := []model.InfluencerAnalytics{{InfluencerID: "i-1", Handle: "mina", Clicks: 12, Revenue: 500000}}

	t.Run("miss populates cache", func(t *testing.T) {
		d := newInfluencerService(t)
		d.cache.EXPECT().Get(gomock.Any(), "analytics:influencers:1:20").Return(nil, nil)
		d.referrals.EXPECT().Analytics(gomock.Any(), 20, 0).Return(rows, nil)
		d.cache.EXPECT().Set(gomock.Any(), "analytics:influencers:1:20", gomock.Any(), analyticsCacheTTL).Return(nil)

		got, err := d.svc.Analytics(context.Background(), util.NewPage(1, 20))
		require.NoError(t, err)
		assert.Equal(t, rows, got)
	})

	t.Run("hit skips repository", func(t *testing.T) {
		d := newInfluencerService(t)
		b, err := json.Marshal(rows)
		require.NoError(t, err)
		d.cache.EXPECT().Get(gomock.Any(), "analytics:influencers:2:20").Return(b, nil)

		got, err := d.svc.Analytics(context.Background(), util.NewPage(2, 20))
		require.NoError(t, err)
		assert.Equal(t, rows, got)
	})

	t.Run("without cache", func(t *testing.T) {
		referrals := mocks.NewMockReferralRepository(gomock.NewController(t))
		svc := NewInfluencerService(InfluencerServiceOptions{Referrals: referrals})
		referrals.EXPECT().Analytics(gomock.Any(), 20, 0).Return(nil, nil)

		got, err := svc.Analytics(context.Background(), util.NewPage(1, 20))
		require.NoError(t, err)
		assert.NotNil(t, got)
	})
}
