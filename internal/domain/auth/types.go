package auth

// Package auth contains domain-level types for authentication and authorization.
// It is pure and free of framework/adapter concerns.

import "time"

// Identity represents the principal resolved by the identity provider from a credential.
// Adapters map provider-specific payloads into this shape.
type Identity struct {
	UserID    string // provider subject (stable user id)
	Email     string
	ExpiresAt time.Time // zero when the provider does not report expiry
}

// ScopedIDs carries role-scoped identifiers resolved for a request.
// Only the id relevant to the route's policy is populated.
type ScopedIDs struct {
	HostID       string `json:"host_id,omitempty"`
	InfluencerID string `json:"influencer_id,omitempty"`
}

// Principal is what a protected handler receives once the gate allows a request.
type Principal struct {
	Identity Identity
	Role     Role
	Scoped   ScopedIDs
	// Bypass is true when the request was admitted with the static admin secret.
	Bypass bool
}

// DenialReason names why the gate rejected a request.
type DenialReason string

const (
	ReasonUnauthenticated DenialReason = "UNAUTHENTICATED"
	ReasonForbidden       DenialReason = "FORBIDDEN"
	ReasonUpstreamError   DenialReason = "UPSTREAM_ERROR"
)

// Decision is the outcome of a single authorization pass.
// Allowed decisions carry the principal; denied decisions carry Reason and,
// for upstream failures, the status-bearing Outcome the caller sees.
type Decision struct {
	Allowed   bool
	Principal Principal

	// Reason is the internal reason (may be UPSTREAM_ERROR).
	Reason DenialReason
	// Outcome is the reason reported to the caller: UNAUTHENTICATED or FORBIDDEN.
	Outcome DenialReason
	// Cause is the underlying error for logs; never rendered to callers.
	Cause error
}

// Allow builds an allowed decision.
func Allow(p Principal) Decision {
	return Decision{Allowed: true, Principal: p}
}

// Deny builds a denied decision where the internal reason equals the outcome.
func Deny(reason DenialReason, cause error) Decision {
	return Decision{Reason: reason, Outcome: reason, Cause: cause}
}

// DenyUpstream builds a fail-closed decision for dependency errors.
func DenyUpstream(outcome DenialReason, cause error) Decision {
	return Decision{Reason: ReasonUpstreamError, Outcome: outcome, Cause: cause}
}

// HTTPStatus maps the caller-visible outcome to an HTTP status code.
func (d Decision) HTTPStatus() int {
	switch {
	case d.Allowed:
		return 200
	case d.Outcome == ReasonUnauthenticated:
		return 401
	default:
		return 403
	}
}
