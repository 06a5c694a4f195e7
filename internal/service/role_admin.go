package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/stayhub/stayhub-web/internal/core"
	domainauth "github.com/stayhub/stayhub-web/internal/domain/auth"
	"github.com/stayhub/stayhub-web/internal/domain/model"
	apperrors "github.com/stayhub/stayhub-web/internal/errors"
	"github.com/stayhub/stayhub-web/internal/util"
)

// RoleAdminServiceOptions groups dependencies for RoleAdminService.
type RoleAdminServiceOptions struct {
	Repos  RoleAdminRepos
	Logger *slog.Logger
}

// RoleAdminRepos groups the repositories RoleAdminService writes.
type RoleAdminRepos struct {
	Roles       core.RoleRepository
	Hosts       core.HostRepository
	Influencers core.InfluencerRepository
}

// RoleAdminService assigns and revokes roles. It is the only writer of user_roles.
type RoleAdminService struct {
	roles       core.RoleRepository
	hosts       core.HostRepository
	influencers core.InfluencerRepository
	logger      *slog.Logger
}

// NewRoleAdminService constructs a new RoleAdminService.
func NewRoleAdminService(opts RoleAdminServiceOptions) *RoleAdminService {
	if opts.Repos.Roles == nil || opts.Repos.Hosts == nil || opts.Repos.Influencers == nil {
		panic("NewRoleAdminService: Roles, Hosts and Influencers are required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &RoleAdminService{
		roles:       opts.Repos.Roles,
		hosts:       opts.Repos.Hosts,
		influencers: opts.Repos.Influencers,
		logger:      logger,
	}
}

// CanGrant reports whether actor may assign (or take away) role r.
// super_admin may grant anything; other staff may grant non-staff roles and staff roles
// strictly below their own.
func CanGrant(actor, r domainauth.Role) bool {
	if actor == domainauth.RoleSuperAdmin {
		return true
	}
	if !actor.IsStaff() {
		return false
	}
	if !r.IsStaff() {
		return true
	}
	c, ok := domainauth.Compare(actor, r)
	return ok && c > 0
}

// List returns role assignments, optionally filtered by role.
func (s *RoleAdminService) List(ctx context.Context, p util.Page, role string) ([]*model.RoleAssignment, error) {
	opts := model.RoleListOptions{Limit: p.Limit(), Offset: p.Offset()}
	if strings.TrimSpace(role) != "" {
		r, err := domainauth.ParseRole(role)
		if err != nil {
			return nil, apperrors.Validation(err.Error())
		}
		opts.Role = &r
	}
	items, err := s.roles.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*model.RoleAssignment{}
	}
	return items, nil
}

// Assign sets userID's role on behalf of actor. Granting host or influencer also ensures
// the matching record exists so scoped policies can resolve it.
func (s *RoleAdminService) Assign(
	ctx context.Context,
	actor domainauth.Principal,
	req model.SetRoleRequest,
) (*model.RoleAssignment, error) {
	req.UserID = strings.TrimSpace(req.UserID)
	if req.UserID == "" {
		return nil, apperrors.ValidationField("user_id", "user_id is required and cannot be empty")
	}
	role, err := domainauth.ParseRole(string(req.Role))
	if err != nil {
		return nil, apperrors.ValidationField("role", err.Error())
	}
	req.Role = role
	req.GrantedBy = actor.Identity.UserID

	if err = checkActor(actor, req.UserID, role); err != nil {
		return nil, err
	}
	existing, err := s.roles.GetRole(ctx, req.UserID)
	switch {
	case apperrors.IsNotFound(err):
	case err != nil:
		return nil, err
	case !CanGrant(actor.Role, existing):
		return nil, apperrors.Forbidden("insufficient role to modify a " + string(existing))
	}

	switch role {
	case domainauth.RoleHost:
		if _, err = s.hosts.Ensure(ctx, req.UserID, req.DisplayName); err != nil {
			return nil, err
		}
	case domainauth.RoleInfluencer:
		if _, err = s.influencers.Ensure(ctx, req.UserID, req.DisplayName); err != nil {
			return nil, err
		}
	}

	ra, err := s.roles.Upsert(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "role assigned",
		"user_id", req.UserID, "role", role, "granted_by", actor.Identity.UserID, "bypass", actor.Bypass)
	return ra, nil
}

// Revoke removes userID's role assignment.
func (s *RoleAdminService) Revoke(ctx context.Context, actor domainauth.Principal, userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return apperrors.ValidationField("user_id", "user_id is required and cannot be empty")
	}
	current, err := s.roles.GetRole(ctx, userID)
	if err != nil {
		return err
	}
	if err = checkActor(actor, userID, current); err != nil {
		return err
	}
	ok, err := s.roles.Delete(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NotFound("role assignment not found")
	}
	s.logger.InfoContext(ctx, "role revoked",
		"user_id", userID, "role", current, "revoked_by", actor.Identity.UserID, "bypass", actor.Bypass)
	return nil
}

// checkActor forbids changing one's own assignment and enforces CanGrant for target.
func checkActor(actor domainauth.Principal, userID string, target domainauth.Role) error {
	if userID == actor.Identity.UserID {
		return apperrors.Forbidden("you cannot change your own role")
	}
	if !CanGrant(actor.Role, target) {
		return apperrors.Forbidden("insufficient role to grant " + string(target))
	}
	return nil
}
