package auth

import (
	"fmt"
	"sort"
	"strings"
)

// Role represents an application's authorization role.
// Kept in string form for persistence and JSON.
type Role string

const (
	RoleUser       Role = "user"
	RoleHost       Role = "host"
	RoleInfluencer Role = "influencer"
	RoleManager    Role = "manager"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// AllRoles lists every known role in a stable order.
func AllRoles() []Role {
	return []Role{RoleUser, RoleHost, RoleInfluencer, RoleManager, RoleAdmin, RoleSuperAdmin}
}

// parents holds the covering relation of the role partial order: each role maps to
// the roles immediately below it. user is the bottom element; host, influencer and
// the staff chain (manager < admin < super_admin) are mutually incomparable.
var parents = map[Role][]Role{ //nolint:gochecknoglobals // immutable lattice definition
	RoleUser:       nil,
	RoleHost:       {RoleUser},
	RoleInfluencer: {RoleUser},
	RoleManager:    {RoleUser},
	RoleAdmin:      {RoleManager},
	RoleSuperAdmin: {RoleAdmin},
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	_, ok := parents[r]
	return ok
}

// IsStaff reports whether r belongs to the admin family.
func (r Role) IsStaff() bool {
	return r.AtLeast(RoleManager)
}

// ParseRole normalises and validates a role string.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// AtLeast reports whether r is greater than or equal to other in the role partial order.
// Unknown roles are comparable to nothing, including themselves.
func (r Role) AtLeast(other Role) bool {
	if !r.Valid() || !other.Valid() {
		return false
	}
	if r == other {
		return true
	}
	for _, p := range parents[r] {
		if p.AtLeast(other) {
			return true
		}
	}
	return false
}

// Compare returns -1, 0 or 1 when a is below, equal to or above b, and ok=false when
// the two roles are incomparable.
func Compare(a, b Role) (int, bool) {
	switch {
	case a == b && a.Valid():
		return 0, true
	case a.AtLeast(b):
		return 1, true
	case b.AtLeast(a):
		return -1, true
	default:
		return 0, false
	}
}

// RoleSet is an immutable set of permitted roles.
type RoleSet struct {
	m map[Role]struct{}
}

// NewRoleSet builds a set from the given roles, ignoring unknown values.
func NewRoleSet(roles ...Role) RoleSet {
	m := make(map[Role]struct{}, len(roles))
	for _, r := range roles {
		if r.Valid() {
			m[r] = struct{}{}
		}
	}
	return RoleSet{m: m}
}

// RolesAtLeast returns every role that is at least min in the partial order.
func RolesAtLeast(minRole Role) RoleSet {
	var out []Role
	for _, r := range AllRoles() {
		if r.AtLeast(minRole) {
			out = append(out, r)
		}
	}
	return NewRoleSet(out...)
}

// Contains reports membership.
func (s RoleSet) Contains(r Role) bool {
	_, ok := s.m[r]
	return ok
}

// Len returns the number of roles in the set.
func (s RoleSet) Len() int { return len(s.m) }

// Roles returns the members sorted by name.
func (s RoleSet) Roles() []Role {
	out := make([]Role, 0, len(s.m))
	for r := range s.m {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s RoleSet) String() string {
	names := make([]string, 0, len(s.m))
	for _, r := range s.Roles() {
		names = append(names, string(r))
	}
	return "{" + strings.Join(names, ",") + "}"
}
