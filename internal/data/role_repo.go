package data

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/stayhub/stayhub-web/internal/core"
	"github.com/stayhub/stayhub-web/internal/data/listquery"
	domainauth "github.com/stayhub/stayhub-web/internal/domain/auth"
	"github.com/stayhub/stayhub-web/internal/domain/model"
	apperrors "github.com/stayhub/stayhub-web/internal/errors"
	"github.com/stayhub/stayhub-web/internal/ports"
)

var (
	_ core.RoleRepository = (*RoleRepo)(nil)
	_ ports.RoleStore     = (*RoleRepo)(nil)
)

const roleColumns = `user_id, role, granted_by, updated_at`

// RoleRepo reads and writes user_roles. It also serves as the gate's RoleStore when
// the database is reached directly.
type RoleRepo struct {
	DB *sql.DB
}

// NewRoleRepo creates a new RoleRepo.
func NewRoleRepo(db *sql.DB) *RoleRepo {
	return &RoleRepo{DB: db}
}

// GetRole returns the user's role. A missing row wraps ports.ErrNotFound; a row holding
// an unknown role is an error, never a default.
func (r *RoleRepo) GetRole(ctx context.Context, userID string) (domainauth.Role, error) {
	var raw string
	err := queryRow(ctx, r.DB, &raw, `SELECT role FROM user_roles WHERE user_id = $1`, userID)
	if err != nil {
		return "", mapErr(err, "role assignment")
	}
	role, err := domainauth.ParseRole(raw)
	if err != nil {
		return "", fmt.Errorf("user_roles row for %s: %w", userID, err)
	}
	return role, nil
}

// Upsert sets the user's role.
func (r *RoleRepo) Upsert(ctx context.Context, req model.SetRoleRequest) (*model.RoleAssignment, error) {
	if !req.Role.Valid() {
		return nil, apperrors.ValidationField("role", "unknown role")
	}
	var grantedBy *string
	if req.GrantedBy != "" {
		grantedBy = &req.GrantedBy
	}
	out, err := queryOne[model.RoleAssignment](ctx, r.DB, `
		INSERT INTO user_roles (user_id, role, granted_by)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
			SET role = EXCLUDED.role, granted_by = EXCLUDED.granted_by, updated_at = now()
		RETURNING `+roleColumns,
		req.UserID, req.Role, grantedBy,
	)
	if err != nil {
		return nil, mapErr(err, "role assignment")
	}
	return &out, nil
}

// Delete removes the user's role and reports whether one existed.
func (r *RoleRepo) Delete(ctx context.Context, userID string) (bool, error) {
	n, err := exec(ctx, r.DB, `DELETE FROM user_roles WHERE user_id = $1`, userID)
	if err != nil {
		return false, mapErr(err, "role assignment")
	}
	return n > 0, nil
}

// List returns assignments ordered by most recently changed.
func (r *RoleRepo) List(ctx context.Context, opts model.RoleListOptions) ([]*model.RoleAssignment, error) {
	q := listquery.New("user_roles", roleColumns).
		OrderBy("updated_at DESC").
		OrderBy("user_id").
		Page(opts.Limit, opts.Offset)
	if opts.Role != nil {
		q.WhereEq("role", *opts.Role)
	}
	listSQL, args := q.Select()
	items, err := queryAll[model.RoleAssignment](ctx, r.DB, listSQL, args...)
	if err != nil {
		return nil, mapErr(err, "role assignment")
	}
	return items, nil
}
