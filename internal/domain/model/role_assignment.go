package model

import (
	"time"

	domainauth "github.com/stayhub/stayhub-web/internal/domain/auth"
)

// RoleAssignment is a row of user_roles.
type RoleAssignment struct {
	UserID    string          `json:"user_id"              db:"user_id"`
	Role      domainauth.Role `json:"role"                 db:"role"`
	GrantedBy *string         `json:"granted_by,omitempty" db:"granted_by"`
	UpdatedAt time.Time       `json:"updated_at"           db:"updated_at"`
}

// RoleListOptions controls paging and an optional role filter.
type RoleListOptions struct {
	Limit  int
	Offset int
	Role   *domainauth.Role
}

// SetRoleRequest assigns a role. GrantedBy is the acting principal's user id.
type SetRoleRequest struct {
	UserID    string          `json:"-"`
	Role      domainauth.Role `json:"role"`
	GrantedBy string          `json:"-"`
	// DisplayName seeds the host/influencer record created alongside the grant.
	DisplayName string `json:"display_name,omitempty"`
}

// Host is the host record owned by a user with the host role.
type Host struct {
	ID          string    `json:"id"           db:"id"`
	UserID      string    `json:"user_id"      db:"user_id"`
	DisplayName string    `json:"display_name" db:"display_name"`
	CreatedAt   time.Time `json:"created_at"   db:"created_at"`
}

// Influencer is the influencer record owned by a user with the influencer role.
type Influencer struct {
	ID        string    `json:"id"         db:"id"`
	UserID    string    `json:"user_id"    db:"user_id"`
	Handle    string    `json:"handle"     db:"handle"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
