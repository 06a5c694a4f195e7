package data

import (
	"context"
	"testing"

	"github.com/stayhub/stayhub-web/internal/core"
	"github.com/stayhub/stayhub-web/internal/domain/model"
	apperrors "github.com/stayhub/stayhub-web/internal/errors"
	"github.com/stayhub/stayhub-web/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccommodationRepo_Integration(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewAccommodationRepo(db)
	ctx := context.Background()

	hostID := testutil.SeedHost(t, db, "host-user")
	otherHost := testutil.SeedHost(t, db, "other-host")

	created, err := repo.Create(ctx, &model.CreateAccommodationRequest{
		HostID:        hostID,
		Name:          "  Hanok stay ",
		Region:        "jeonju",
		PricePerNight: 90000,
		MaxGuests:     3,
	})
	require.NoError(t, err)
	assert.Equal(t, "Hanok stay", created.Name)
	assert.Equal(t, model.AccommodationDraft, created.Status)

	t.Run("get by id", func(t *testing.T) {
		got, getErr := repo.GetByID(ctx, created.ID)
		require.NoError(t, getErr)
		assert.Equal(t, created.ID, got.ID)

		_, getErr = repo.GetByID(ctx, "not-a-uuid")
		assert.True(t, apperrors.IsNotFound(getErr))
	})

	t.Run("update only by owner", func(t *testing.T) {
		published := model.AccommodationPublished
		price := int64(95000)
		updated, upErr := repo.UpdateForHost(ctx, core.UpdateAccommodationParams{
			ID: created.ID, HostID: hostID,
			Req: model.UpdateAccommodationRequest{PricePerNight: &price, Status: &published},
		})
		require.NoError(t, upErr)
		assert.Equal(t, price, updated.PricePerNight)
		assert.Equal(t, model.AccommodationPublished, updated.Status)

		_, upErr = repo.UpdateForHost(ctx, core.UpdateAccommodationParams{
			ID: created.ID, HostID: otherHost,
			Req: model.UpdateAccommodationRequest{PricePerNight: &price},
		})
		assert.True(t, apperrors.IsNotFound(upErr))
	})

	t.Run("suspended listing cannot be edited by host", func(t *testing.T) {
		_, err := repo.SetStatus(ctx, created.ID, model.AccommodationSuspended)
		require.NoError(t, err)
		name := "renamed"
		_, err = repo.UpdateForHost(ctx, core.UpdateAccommodationParams{
			ID: created.ID, HostID: hostID, Req: model.UpdateAccommodationRequest{Name: &name},
		})
		assert.True(t, apperrors.IsNotFound(err))
		_, err = repo.SetStatus(ctx, created.ID, model.AccommodationPublished)
		require.NoError(t, err)
	})

	t.Run("list filters and counts", func(t *testing.T) {
		testutil.SeedAccommodation(t, db, testutil.AccommodationSeed{HostID: otherHost, Region: "busan"})
		testutil.SeedAccommodation(t, db, testutil.AccommodationSeed{HostID: otherHost, Region: "busan", Status: "draft"})

		published := model.AccommodationPublished
		busan := "busan"
		items, total, listErr := repo.List(ctx, model.AccommodationListOptions{Status: &published, Region: &busan})
		require.NoError(t, listErr)
		assert.Equal(t, 1, total)
		require.Len(t, items, 1)
		assert.Equal(t, otherHost, items[0].HostID)

		items, total, listErr = repo.List(ctx, model.AccommodationListOptions{HostID: &otherHost, Limit: 1})
		require.NoError(t, listErr)
		assert.Equal(t, 2, total)
		assert.Len(t, items, 1)

		n, countErr := repo.CountByHost(ctx, hostID)
		require.NoError(t, countErr)
		assert.Equal(t, 1, n)
	})
}
