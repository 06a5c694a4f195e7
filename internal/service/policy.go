package service

import (
	domainauth "github.com/stayhub/stayhub-web/internal/domain/auth"
	"github.com/stayhub/stayhub-web/internal/ports"
)

// ScopeKind names which role-scoped id a policy resolves.
type ScopeKind string

const (
	ScopeHost       ScopeKind = "host"
	ScopeInfluencer ScopeKind = "influencer"
)

// ScopeRequirement makes a policy resolve one role-scoped id after the role check.
type ScopeRequirement struct {
	Kind     ScopeKind
	Resolver ports.ScopedIDResolver
}

// Policy is the per-route authorization requirement handed to the gate.
type Policy struct {
	Name      string
	Permitted domainauth.RoleSet
	// AllowBypass admits the static admin secret. Only honoured for unscoped
	// policies that permit the admin role.
	AllowBypass bool
	Scope       *ScopeRequirement
}

// bypassEligible reports whether the static admin secret may satisfy this policy.
func (p Policy) bypassEligible() bool {
	return p.AllowBypass && p.Scope == nil && p.Permitted.Contains(domainauth.RoleAdmin)
}

// PolicyOptions groups the scoped-id resolvers used by portal policies.
type PolicyOptions struct {
	Hosts       ports.ScopedIDResolver
	Influencers ports.ScopedIDResolver
}

// Policies is the fixed set of route policies used by the HTTP layer.
type Policies struct {
	// Admin admits the admin family (manager, admin, super_admin) and the bypass secret.
	Admin Policy
	// SuperAdmin admits only super_admin.
	SuperAdmin Policy
	// Host admits hosts and resolves their host id.
	Host Policy
	// Influencer admits influencers and resolves their influencer id.
	Influencer Policy
	// HostOrAdmin admits {host, admin, super_admin} without scoped lookups.
	HostOrAdmin Policy
	// Authenticated admits any assigned role.
	Authenticated Policy
}

// NewPolicies builds the route policies. Both resolvers are required.
func NewPolicies(opts PolicyOptions) Policies {
	if opts.Hosts == nil {
		panic("NewPolicies: Hosts resolver is required")
	}
	if opts.Influencers == nil {
		panic("NewPolicies: Influencers resolver is required")
	}
	return Policies{
		Admin: Policy{
			Name:        "admin",
			Permitted:   domainauth.RolesAtLeast(domainauth.RoleManager),
			AllowBypass: true,
		},
		SuperAdmin: Policy{
			Name:      "super_admin",
			Permitted: domainauth.NewRoleSet(domainauth.RoleSuperAdmin),
		},
		Host: Policy{
			Name:      "host",
			Permitted: domainauth.NewRoleSet(domainauth.RoleHost),
			Scope:     &ScopeRequirement{Kind: ScopeHost, Resolver: opts.Hosts},
		},
		Influencer: Policy{
			Name:      "influencer",
			Permitted: domainauth.NewRoleSet(domainauth.RoleInfluencer),
			Scope:     &ScopeRequirement{Kind: ScopeInfluencer, Resolver: opts.Influencers},
		},
		HostOrAdmin: Policy{
			Name:      "host_or_admin",
			Permitted: domainauth.NewRoleSet(domainauth.RoleHost, domainauth.RoleAdmin, domainauth.RoleSuperAdmin),
		},
		Authenticated: Policy{
			Name:      "authenticated",
			Permitted: domainauth.RolesAtLeast(domainauth.RoleUser),
		},
	}
}
