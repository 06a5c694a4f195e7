package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stayhub/stayhub-web/internal/core"
	"github.com/stayhub/stayhub-web/internal/domain/model"
	apperrors "github.com/stayhub/stayhub-web/internal/errors"
	"github.com/stayhub/stayhub-web/internal/mocks"
	"github.com/stayhub/stayhub-web/internal/util"
)

func ptrTo[T any](v T) *T { return &v }

func newAccommodationService(t *testing.T) (*mocks.MockAccommodationRepository, *AccommodationService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAccommodationRepository(ctrl)
	return repo, NewAccommodationService(AccommodationServiceOptions{Repo: repo})
}

func TestNewAccommodationService_PanicsWithoutRepo(t *testing.T) {
	assert.Panics(t, func() { NewAccommodationService(AccommodationServiceOptions{}) })
}

func TestAccommodationService_ListPublished(t *testing.T) {
	t.Parallel()
	repo, svc := newAccommodationService(t)

	repo.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, opts model.AccommodationListOptions) ([]*model.Accommodation, int, error) {
			require.NotNil(t, opts.Status)
			assert.Equal(t, model.AccommodationPublished, *opts.Status)
			require.NotNil(t, opts.Region)
			assert.Equal(t, "Jeju", *opts.Region)
			assert.Equal(t, 10, opts.Limit)
			assert.Equal(t, 10, opts.Offset)
			assert.Nil(t, opts.HostID)
			return []*model.Accommodation{{ID: "a-11"}}, 25, nil
		})

	page, err := svc.ListPublished(context.Background(), util.NewPage(2, 10), "  Jeju ")

	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasNext)
	assert.Equal(t, 2, page.Page)
}

func TestAccommodationService_ListPublished_EmptyIsNotNil(t *testing.T) {
	t.Parallel()
	repo, svc := newAccommodationService(t)
	repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, 0, nil)

	page, err := svc.ListPublished(context.Background(), util.NewPage(1, 0), "")

	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Equal(t, util.DefaultPageSize, page.PageSize)
	assert.Equal(t, 1, page.TotalPages)
}

func TestAccommodationService_GetPublished(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   model.AccommodationStatus
		notFound bool
	}{
		{"published", model.AccommodationPublished, false},
		{"draft hidden", model.AccommodationDraft, true},
		{"suspended hidden", model.AccommodationSuspended, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, svc := newAccommodationService(t)
			repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(&model.Accommodation{ID: "a-1", Status: tt.status}, nil)

			got, err := svc.GetPublished(context.Background(), "a-1")
			if tt.notFound {
				assert.True(t, apperrors.IsNotFound(err))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "a-1", got.ID)
		})
	}
}

func TestAccommodationService_CreateForHost(t *testing.T) {
	t.Parallel()
	repo, svc := newAccommodationService(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *model.CreateAccommodationRequest) (*model.Accommodation, error) {
			assert.Equal(t, "h-1", req.HostID)
			assert.Equal(t, "Hanok Stay", req.Name)
			return &model.Accommodation{ID: "a-1", HostID: req.HostID, Status: model.AccommodationDraft}, nil
		})

	got, err := svc.CreateForHost(context.Background(), "h-1", model.CreateAccommodationRequest{
		HostID: "someone-else", Name: " Hanok Stay ", Region: "Seoul", PricePerNight: 120000, MaxGuests: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, model.AccommodationDraft, got.Status)
}

func TestAccommodationService_CreateForHost_Invalid(t *testing.T) {
	t.Parallel()
	_, svc := newAccommodationService(t)

	_, err := svc.CreateForHost(context.Background(), "h-1", model.CreateAccommodationRequest{Name: "x", Region: "Seoul"})

	assert.True(t, apperrors.IsValidation(err))
}

func TestAccommodationService_UpdateForHost(t *testing.T) {
	t.Parallel()

	t.Run("scoped to host", func(t *testing.T) {
		repo, svc := newAccommodationService(t)
		req := model.UpdateAccommodationRequest{PricePerNight: ptrTo[int64](99000)}
		repo.EXPECT().UpdateForHost(gomock.Any(), core.UpdateAccommodationParams{ID: "a-1", HostID: "h-1", Req: req}).
			Return(&model.Accommodation{ID: "a-1", PricePerNight: 99000}, nil)

		got, err := svc.UpdateForHost(context.Background(), "h-1", "a-1", req)
		require.NoError(t, err)
		assert.Equal(t, int64(99000), got.PricePerNight)
	})

	t.Run("host cannot suspend", func(t *testing.T) {
		_, svc := newAccommodationService(t)
		_, err := svc.UpdateForHost(context.Background(), "h-1", "a-1",
			model.UpdateAccommodationRequest{Status: ptrTo(model.AccommodationSuspended)})
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("other host's listing", func(t *testing.T) {
		repo, svc := newAccommodationService(t)
		repo.EXPECT().UpdateForHost(gomock.Any(), gomock.Any()).Return(nil, apperrors.NotFound("accommodation not found"))
		_, err := svc.UpdateForHost(context.Background(), "h-2", "a-1",
			model.UpdateAccommodationRequest{Name: ptrTo("New name")})
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestAccommodationService_AdminActions(t *testing.T) {
	t.Parallel()

	t.Run("list all with status filter", func(t *testing.T) {
		repo, svc := newAccommodationService(t)
		repo.EXPECT().List(gomock.Any(), model.AccommodationListOptions{
			Limit: 20, Offset: 0, Status: ptrTo(model.AccommodationSuspended),
		}).Return([]*model.Accommodation{{ID: "a-1"}}, 1, nil)

		page, err := svc.ListAll(context.Background(), util.NewPage(1, 20), "suspended")
		require.NoError(t, err)
		assert.Len(t, page.Items, 1)
	})

	t.Run("list all rejects unknown status", func(t *testing.T) {
		_, svc := newAccommodationService(t)
		_, err := svc.ListAll(context.Background(), util.NewPage(1, 20), "archived")
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("set status", func(t *testing.T) {
		repo, svc := newAccommodationService(t)
		repo.EXPECT().SetStatus(gomock.Any(), "a-1", model.AccommodationSuspended).
			Return(&model.Accommodation{ID: "a-1", Status: model.AccommodationSuspended}, nil)
		got, err := svc.SetStatus(context.Background(), "a-1", "suspended")
		require.NoError(t, err)
		assert.Equal(t, model.AccommodationSuspended, got.Status)
	})

	t.Run("repository error passes through", func(t *testing.T) {
		repo, svc := newAccommodationService(t)
		boom := errors.New("db down")
		repo.EXPECT().SetStatus(gomock.Any(), "a-1", model.AccommodationPublished).Return(nil, boom)
		_, err := svc.SetStatus(context.Background(), "a-1", "published")
		assert.ErrorIs(t, err, boom)
	})
}
