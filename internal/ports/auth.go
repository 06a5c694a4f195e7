package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters and internal/data; orchestration in internal/service.

import (
	"context"
	"errors"
	"time"

	domainauth "github.com/stayhub/stayhub-web/internal/domain/auth"
)

var (
	// ErrInvalidCredential is returned by identity resolvers when the provider rejects
	// a credential (invalid, expired, malformed). Any other resolver error is treated
	// as an upstream failure.
	ErrInvalidCredential = errors.New("invalid credential")

	// ErrNotFound is returned by role and scoped-id lookups when no row exists.
	ErrNotFound = errors.New("not found")
)

// IdentityResolver resolves a bearer credential into an identity by asking the identity provider.
type IdentityResolver interface {
	Resolve(ctx context.Context, credential string) (domainauth.Identity, error)
}

// RoleStore reads role assignments.
type RoleStore interface {
	// GetRole returns the role assigned to userID or ErrNotFound.
	GetRole(ctx context.Context, userID string) (domainauth.Role, error)
}

// ScopedIDResolver resolves a role-scoped id (host id, influencer id) for a user.
type ScopedIDResolver interface {
	// ResolveScopedID returns the id owned by userID or ErrNotFound.
	ResolveScopedID(ctx context.Context, userID string) (string, error)
}

// ScopedIDResolverFunc adapts a function to ScopedIDResolver.
type ScopedIDResolverFunc func(ctx context.Context, userID string) (string, error)

// ResolveScopedID calls f.
func (f ScopedIDResolverFunc) ResolveScopedID(ctx context.Context, userID string) (string, error) {
	return f(ctx, userID)
}

// BeginInput carries inputs for initiating a login flow.
type BeginInput struct {
	RedirectURL string
}

// ExchangeInput groups parameters for the code/token exchange.
type ExchangeInput struct {
	Code  string
	State string
	Nonce string
}

// TokenSet is the result of a completed login: the credential handed to the browser
// plus the identity it belongs to.
type TokenSet struct {
	AccessToken string
	ExpiresAt   time.Time
	Identity    domainauth.Identity
}

// AuthProvider initiates and completes a login flow against the identity provider.
type AuthProvider interface {
	// Begin starts the login flow and returns the provider auth URL, an opaque state, and a nonce.
	Begin(ctx context.Context, in BeginInput) (authURL, state, nonce string, err error)

	// Exchange completes the login flow, verifying the nonce, and returns the issued credential.
	Exchange(ctx context.Context, in ExchangeInput) (TokenSet, error)
}

// LoginState is the server-held half of an in-flight login.
type LoginState struct {
	State       string    `json:"state"`
	Nonce       string    `json:"nonce"`
	RedirectURI string    `json:"redirect_uri"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// LoginStateStore keeps in-flight login state. Take is single-use.
type LoginStateStore interface {
	Save(ctx context.Context, st LoginState) error
	Take(ctx context.Context, state string) (LoginState, error)
}
