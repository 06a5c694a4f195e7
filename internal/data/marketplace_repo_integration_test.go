package data

import (
	"context"
	"errors"
	"testing"
	"time"

	domainauth "github.com/stayhub/stayhub-web/internal/domain/auth"
	"github.com/stayhub/stayhub-web/internal/domain/model"
	apperrors "github.com/stayhub/stayhub-web/internal/errors"
	"github.com/stayhub/stayhub-web/internal/ports"
	"github.com/stayhub/stayhub-web/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleRepo_Integration(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewRoleRepo(db)
	ctx := context.Background()

	_, err := repo.GetRole(ctx, "nobody")
	assert.True(t, errors.Is(err, ports.ErrNotFound))
	assert.True(t, apperrors.IsNotFound(err))

	ra, err := repo.Upsert(ctx, model.SetRoleRequest{UserID: "u1", Role: domainauth.RoleManager, GrantedBy: "admin-1"})
	require.NoError(t, err)
	require.NotNil(t, ra.GrantedBy)
	assert.Equal(t, "admin-1", *ra.GrantedBy)

	ra, err = repo.Upsert(ctx, model.SetRoleRequest{UserID: "u1", Role: domainauth.RoleAdmin})
	require.NoError(t, err)
	assert.Nil(t, ra.GrantedBy)

	role, err := repo.GetRole(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleAdmin, role)

	admin := domainauth.RoleAdmin
	items, err := repo.List(ctx, model.RoleListOptions{Role: &admin})
	require.NoError(t, err)
	assert.Len(t, items, 1)

	ok, err := repo.Delete(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.Delete(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHostAndInfluencerRepo_Integration(t *testing.T) {
	db := testutil.SetupTestDB(t)
	hosts := NewHostRepo(db)
	influencers := NewInfluencerRepo(db)
	ctx := context.Background()

	_, err := hosts.ResolveScopedID(ctx, "h1")
	assert.True(t, errors.Is(err, ports.ErrNotFound))

	h, err := hosts.Ensure(ctx, "h1", "Jin's place")
	require.NoError(t, err)
	again, err := hosts.Ensure(ctx, "h1", "")
	require.NoError(t, err)
	assert.Equal(t, h.ID, again.ID)
	assert.Equal(t, "Jin's place", again.DisplayName)

	id, err := hosts.ResolveScopedID(ctx, "h1")
	require.NoError(t, err)
	assert.Equal(t, h.ID, id)

	inf, err := influencers.Ensure(ctx, "i1", "@traveller")
	require.NoError(t, err)
	assert.Equal(t, "traveller", inf.Handle)
	id, err = influencers.ResolveScopedID(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, inf.ID, id)
}

func TestNoticeRepo_Integration(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewNoticeRepo(db)
	ctx := context.Background()

	draft, err := repo.Create(ctx, &model.CreateNoticeRequest{Title: "Draft", Body: "b", CreatedBy: "admin"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &model.CreateNoticeRequest{Title: "Live", Body: "b", Published: true, CreatedBy: "admin"})
	require.NoError(t, err)

	items, total, err := repo.List(ctx, model.NoticeListOptions{PublishedOnly: true})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Live", items[0].Title)

	pinned := true
	updated, err := repo.Update(ctx, draft.ID, model.UpdateNoticeRequest{Pinned: &pinned})
	require.NoError(t, err)
	assert.True(t, updated.Pinned)

	items, _, err = repo.List(ctx, model.NoticeListOptions{})
	require.NoError(t, err)
	assert.Equal(t, draft.ID, items[0].ID)

	ok, err := repo.Delete(ctx, draft.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	_, err = repo.GetByID(ctx, draft.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestReferralRepo_Integration(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewReferralRepo(db)
	ctx := context.Background()

	infID := testutil.SeedInfluencer(t, db, "inf-user")
	hostID := testutil.SeedHost(t, db, "host-user")
	accID := testutil.SeedAccommodation(t, db, testutil.AccommodationSeed{HostID: hostID})

	link, err := repo.CreateLink(ctx, &model.CreateReferralLinkRequest{InfluencerID: infID, Code: "summer24", LandingPath: "/stays"})
	require.NoError(t, err)
	_, err = repo.CreateLink(ctx, &model.CreateReferralLinkRequest{InfluencerID: infID, Code: "summer24", LandingPath: "/"})
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "code", apperrors.GetField(err))

	got, err := repo.GetLinkByCode(ctx, "summer24")
	require.NoError(t, err)
	assert.Equal(t, link.ID, got.ID)

	require.NoError(t, repo.RecordClick(ctx, model.ReferralClick{LinkID: link.ID, ReferrerHost: "instagram.com"}))
	require.NoError(t, repo.RecordClick(ctx, model.ReferralClick{LinkID: link.ID, CreatedAt: time.Now().Add(-time.Hour)}))

	code := "summer24"
	testutil.SeedReservation(t, db, testutil.ReservationSeed{
		AccommodationID: accID, UserID: "g1", CheckIn: "2030-01-01", CheckOut: "2030-01-03",
		TotalPrice: 200000, ReferralCode: &code,
	})
	testutil.SeedReservation(t, db, testutil.ReservationSeed{
		AccommodationID: accID, UserID: "g2", CheckIn: "2030-02-01", CheckOut: "2030-02-02",
		TotalPrice: 100000, Status: "cancelled", ReferralCode: &code,
	})

	stats, err := repo.ListLinkStats(ctx, infID)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 2, stats[0].Clicks)
	assert.Equal(t, "summer24", stats[0].Code)

	totals, err := repo.Totals(ctx, infID)
	require.NoError(t, err)
	assert.Equal(t, model.ReferralTotals{Reservations: 1, Revenue: 200000}, totals)

	rows, err := repo.Analytics(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, model.InfluencerAnalytics{
		InfluencerID: infID, Handle: "inf-user", Links: 1, Clicks: 2, Reservations: 1, Revenue: 200000,
	}, rows[0])
}
