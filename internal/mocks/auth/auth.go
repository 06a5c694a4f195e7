package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	domainauth "github.com/stayhub/stayhub-web/internal/domain/auth"
	"github.com/stayhub/stayhub-web/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.AuthProvider     = (*MockAuthProvider)(nil)
	_ ports.LoginStateStore  = (*MemoryLoginStateStore)(nil)
	_ ports.IdentityResolver = (*StaticIdentityResolver)(nil)
	_ ports.RoleStore        = (*MemoryRoleStore)(nil)
	_ ports.ScopedIDResolver = (*MemoryScopedIDs)(nil)
)

// MockAuthProvider simulates an IdP login flow with deterministic state/nonce handling.
type MockAuthProvider struct {
	BeginFunc    func(ctx context.Context, in ports.BeginInput) (authURL, state, nonce string, err error)
	ExchangeFunc func(ctx context.Context, in ports.ExchangeInput) (ports.TokenSet, error)

	AuthURL     string
	AccessToken string
	DefaultUser domainauth.Identity

	callCount int
}

// NewMockAuthProvider creates a MockAuthProvider with sensible defaults.
func NewMockAuthProvider() *MockAuthProvider {
	return &MockAuthProvider{
		AuthURL:     "https://mock-idp/auth",
		AccessToken: "aaa.bbb.ccc",
		DefaultUser: domainauth.Identity{UserID: "mock-user-1", Email: "mock.user@example.com"},
	}
}

func (m *MockAuthProvider) Begin(ctx context.Context, in ports.BeginInput) (string, string, string, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx, in)
	}
	m.callCount++
	return m.AuthURL, fmt.Sprintf("state-%d", m.callCount), fmt.Sprintf("nonce-%d", m.callCount), nil
}

func (m *MockAuthProvider) Exchange(ctx context.Context, in ports.ExchangeInput) (ports.TokenSet, error) {
	if m.ExchangeFunc != nil {
		return m.ExchangeFunc(ctx, in)
	}
	exp := time.Now().Add(time.Hour)
	user := m.DefaultUser
	user.ExpiresAt = exp
	return ports.TokenSet{AccessToken: m.AccessToken, ExpiresAt: exp, Identity: user}, nil
}

// MemoryLoginStateStore is an in-memory LoginStateStore.
type MemoryLoginStateStore struct {
	mu     sync.Mutex
	states map[string]ports.LoginState
}

// NewMemoryLoginStateStore creates an empty store.
func NewMemoryLoginStateStore() *MemoryLoginStateStore {
	return &MemoryLoginStateStore{states: make(map[string]ports.LoginState)}
}

func (m *MemoryLoginStateStore) Save(_ context.Context, st ports.LoginState) error {
	if st.State == "" {
		return errors.New("state cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[st.State] = st
	return nil
}

func (m *MemoryLoginStateStore) Take(_ context.Context, state string) (ports.LoginState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.states[state]
	if !ok {
		return ports.LoginState{}, ports.ErrNotFound
	}
	delete(m.states, state)
	return st, nil
}

// StaticIdentityResolver resolves tokens from a fixed map and counts calls.
// Unknown tokens yield ports.ErrInvalidCredential unless Err is set.
type StaticIdentityResolver struct {
	Tokens map[string]domainauth.Identity
	Err    error
	calls  atomic.Int64
}

func (s *StaticIdentityResolver) Resolve(_ context.Context, credential string) (domainauth.Identity, error) {
	s.calls.Add(1)
	if s.Err != nil {
		return domainauth.Identity{}, s.Err
	}
	id, ok := s.Tokens[credential]
	if !ok {
		return domainauth.Identity{}, ports.ErrInvalidCredential
	}
	return id, nil
}

// Calls returns the number of Resolve calls.
func (s *StaticIdentityResolver) Calls() int { return int(s.calls.Load()) }

// MemoryRoleStore maps user ids to roles.
type MemoryRoleStore struct {
	Roles map[string]domainauth.Role
	Err   error
	calls atomic.Int64
}

func (m *MemoryRoleStore) GetRole(_ context.Context, userID string) (domainauth.Role, error) {
	m.calls.Add(1)
	if m.Err != nil {
		return "", m.Err
	}
	r, ok := m.Roles[userID]
	if !ok {
		return "", ports.ErrNotFound
	}
	return r, nil
}

// Calls returns the number of GetRole calls.
func (m *MemoryRoleStore) Calls() int { return int(m.calls.Load()) }

// MemoryScopedIDs maps user ids to a role-scoped id.
type MemoryScopedIDs struct {
	IDs   map[string]string
	Err   error
	calls atomic.Int64
}

func (m *MemoryScopedIDs) ResolveScopedID(_ context.Context, userID string) (string, error) {
	m.calls.Add(1)
	if m.Err != nil {
		return "", m.Err
	}
	id, ok := m.IDs[userID]
	if !ok {
		return "", ports.ErrNotFound
	}
	return id, nil
}

// Calls returns the number of ResolveScopedID calls.
func (m *MemoryScopedIDs) Calls() int { return int(m.calls.Load()) }
