package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/stayhub/stayhub-web/internal/domain/auth"
	"github.com/stayhub/stayhub-web/internal/domain/model"
	apperrors "github.com/stayhub/stayhub-web/internal/errors"
	"github.com/stayhub/stayhub-web/internal/mocks"
	"github.com/stayhub/stayhub-web/internal/ports"
	"github.com/stayhub/stayhub-web/internal/util"
)

type roleAdminDeps struct {
	roles       *mocks.MockRoleRepository
	hosts       *mocks.MockHostRepository
	influencers *mocks.MockInfluencerRepository
	svc         *RoleAdminService
}

func newRoleAdminService(t *testing.T) roleAdminDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := roleAdminDeps{
		roles:       mocks.NewMockRoleRepository(ctrl),
		hosts:       mocks.NewMockHostRepository(ctrl),
		influencers: mocks.NewMockInfluencerRepository(ctrl),
	}
	d.svc = NewRoleAdminService(RoleAdminServiceOptions{
		Repos: RoleAdminRepos{Roles: d.roles, Hosts: d.hosts, Influencers: d.influencers},
	})
	return d
}

func staff(userID string, role domainauth.Role) domainauth.Principal {
	return domainauth.Principal{Identity: domainauth.Identity{UserID: userID}, Role: role}
}

func noRole() error {
	return apperrors.Wrap(ports.ErrNotFound, apperrors.ErrCodeNotFound, "role not found")
}

func TestCanGrant(t *testing.T) {
	const (
		user  = domainauth.RoleUser
		host  = domainauth.RoleHost
		infl  = domainauth.RoleInfluencer
		mgr   = domainauth.RoleManager
		admin = domainauth.RoleAdmin
		super = domainauth.RoleSuperAdmin
	)
	tests := []struct {
		actor, target domainauth.Role
		want          bool
	}{
		{super, super, true},
		{super, admin, true},
		{super, user, true},
		{admin, mgr, true},
		{admin, host, true},
		{admin, infl, true},
		{admin, admin, false},
		{admin, super, false},
		{mgr, host, true},
		{mgr, user, true},
		{mgr, mgr, false},
		{mgr, admin, false},
		{host, user, false},
		{infl, user, false},
		{user, user, false},
		{domainauth.Role("owner"), user, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanGrant(tt.actor, tt.target), "%s granting %s", tt.actor, tt.target)
	}
}

func TestRoleAdminService_Assign_Host(t *testing.T) {
	t.Parallel()
	d := newRoleAdminService(t)
	ctx := context.Background()

	d.roles.EXPECT().GetRole(ctx, "u-2").Return(domainauth.RoleUser, nil)
	d.hosts.EXPECT().Ensure(ctx, "u-2", "Jeju Stays").Return(&model.Host{ID: "h-2", UserID: "u-2"}, nil)
	d.roles.EXPECT().Upsert(ctx, model.SetRoleRequest{
		UserID: "u-2", Role: domainauth.RoleHost, GrantedBy: "admin-1", DisplayName: "Jeju Stays",
	}).Return(&model.RoleAssignment{UserID: "u-2", Role: domainauth.RoleHost}, nil)

	got, err := d.svc.Assign(ctx, staff("admin-1", domainauth.RoleAdmin), model.SetRoleRequest{
		UserID: " u-2 ", Role: "HOST", DisplayName: "Jeju Stays",
	})

	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleHost, got.Role)
}

func TestRoleAdminService_Assign_InfluencerWithoutPriorRole(t *testing.T) {
	t.Parallel()
	d := newRoleAdminService(t)

	d.roles.EXPECT().GetRole(gomock.Any(), "u-3").Return(domainauth.Role(""), noRole())
	d.influencers.EXPECT().Ensure(gomock.Any(), "u-3", "travelwithmina").Return(&model.Influencer{ID: "i-3"}, nil)
	d.roles.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(&model.RoleAssignment{UserID: "u-3"}, nil)

	_, err := d.svc.Assign(context.Background(), staff("mgr-1", domainauth.RoleManager), model.SetRoleRequest{
		UserID: "u-3", Role: domainauth.RoleInfluencer, DisplayName: "travelwithmina",
	})

	require.NoError(t, err)
}

func TestRoleAdminService_Assign_Forbidden(t *testing.T) {
	t.Parallel()

	t.Run("own role", func(t *testing.T) {
		d := newRoleAdminService(t)
		_, err := d.svc.Assign(context.Background(), staff("super-1", domainauth.RoleSuperAdmin),
			model.SetRoleRequest{UserID: "super-1", Role: domainauth.RoleUser})
		assert.True(t, apperrors.IsForbidden(err))
	})

	t.Run("peer promotion", func(t *testing.T) {
		d := newRoleAdminService(t)
		_, err := d.svc.Assign(context.Background(), staff("admin-1", domainauth.RoleAdmin),
			model.SetRoleRequest{UserID: "u-2", Role: domainauth.RoleAdmin})
		assert.True(t, apperrors.IsForbidden(err))
	})

	t.Run("demoting a senior", func(t *testing.T) {
		d := newRoleAdminService(t)
		d.roles.EXPECT().GetRole(gomock.Any(), "admin-2").Return(domainauth.RoleAdmin, nil)
		_, err := d.svc.Assign(context.Background(), staff("mgr-1", domainauth.RoleManager),
			model.SetRoleRequest{UserID: "admin-2", Role: domainauth.RoleUser})
		assert.True(t, apperrors.IsForbidden(err))
	})

	t.Run("non-staff actor", func(t *testing.T) {
		d := newRoleAdminService(t)
		_, err := d.svc.Assign(context.Background(), staff("h-1", domainauth.RoleHost),
			model.SetRoleRequest{UserID: "u-2", Role: domainauth.RoleUser})
		assert.True(t, apperrors.IsForbidden(err))
	})
}

func TestRoleAdminService_Assign_Validation(t *testing.T) {
	t.Parallel()
	d := newRoleAdminService(t)
	actor := staff("admin-1", domainauth.RoleAdmin)

	_, err := d.svc.Assign(context.Background(), actor, model.SetRoleRequest{Role: domainauth.RoleUser})
	assert.Equal(t, "user_id", apperrors.GetField(err))

	_, err = d.svc.Assign(context.Background(), actor, model.SetRoleRequest{UserID: "u-2", Role: "owner"})
	assert.Equal(t, "role", apperrors.GetField(err))
}

func TestRoleAdminService_Assign_BypassActorIsLogged(t *testing.T) {
	t.Parallel()
	d := newRoleAdminService(t)
	actor := staff(BypassUserID, domainauth.RoleAdmin)
	actor.Bypass = true

	d.roles.EXPECT().GetRole(gomock.Any(), "u-2").Return(domainauth.Role(""), noRole())
	d.roles.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req model.SetRoleRequest) (*model.RoleAssignment, error) {
			assert.Equal(t, BypassUserID, req.GrantedBy)
			return &model.RoleAssignment{UserID: req.UserID, Role: req.Role}, nil
		})

	_, err := d.svc.Assign(context.Background(), actor, model.SetRoleRequest{UserID: "u-2", Role: domainauth.RoleManager})
	require.NoError(t, err)
}

func TestRoleAdminService_Revoke(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		d := newRoleAdminService(t)
		d.roles.EXPECT().GetRole(gomock.Any(), "u-2").Return(domainauth.RoleHost, nil)
		d.roles.EXPECT().Delete(gomock.Any(), "u-2").Return(true, nil)
		require.NoError(t, d.svc.Revoke(context.Background(), staff("mgr-1", domainauth.RoleManager), "u-2"))
	})

	t.Run("missing assignment", func(t *testing.T) {
		d := newRoleAdminService(t)
		d.roles.EXPECT().GetRole(gomock.Any(), "u-2").Return(domainauth.Role(""), noRole())
		err := d.svc.Revoke(context.Background(), staff("mgr-1", domainauth.RoleManager), "u-2")
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("senior target", func(t *testing.T) {
		d := newRoleAdminService(t)
		d.roles.EXPECT().GetRole(gomock.Any(), "super-1").Return(domainauth.RoleSuperAdmin, nil)
		err := d.svc.Revoke(context.Background(), staff("admin-1", domainauth.RoleAdmin), "super-1")
		assert.True(t, apperrors.IsForbidden(err))
	})
}

func TestRoleAdminService_List(t *testing.T) {
	t.Parallel()
	d := newRoleAdminService(t)
	host := domainauth.RoleHost
	d.roles.EXPECT().List(gomock.Any(), model.RoleListOptions{Limit: 50, Offset: 0, Role: &host}).Return(nil, nil)

	items, err := d.svc.List(context.Background(), util.NewPage(1, 50), "host")

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	_, err = d.svc.List(context.Background(), util.NewPage(1, 50), "owner")
	assert.True(t, apperrors.IsValidation(err))
}
