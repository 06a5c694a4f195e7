package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/stayhub/stayhub-web/internal/domain/auth"
	"github.com/stayhub/stayhub-web/internal/mocks"
	fakes "github.com/stayhub/stayhub-web/internal/mocks/auth"
)

const (
	testSecret    = "0123456789abcdef0123456789abcdef"
	hostToken     = "host.token.sig"
	userToken     = "user.token.sig"
	adminToken    = "admin.token.sig"
	influToken    = "influ.token.sig"
	orphanToken   = "orphan.token.sig"
	hostUserID    = "u-host"
	plainUserID   = "u-user"
	adminUserID   = "u-admin"
	influUserID   = "u-influ"
	orphanUserID  = "u-orphan"
	hostRecordID  = "h-1"
	influRecordID = "i-1"
)

type gateFixture struct {
	identities  *fakes.StaticIdentityResolver
	roles       *fakes.MemoryRoleStore
	hosts       *fakes.MemoryScopedIDs
	influencers *fakes.MemoryScopedIDs
	gate        *Gate
	policies    Policies
}

type recordingObserver struct {
	mu        sync.Mutex
	decisions []domainauth.Decision
	policies  []string
}

func (o *recordingObserver) ObserveDecision(policy string, d domainauth.Decision, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.policies = append(o.policies, policy)
	o.decisions = append(o.decisions, d)
}

func newGateFixture(t *testing.T, bypass BypassConfig) *gateFixture {
	t.Helper()
	f := &gateFixture{
		identities: &fakes.StaticIdentityResolver{Tokens: map[string]domainauth.Identity{
			hostToken:   {UserID: hostUserID, Email: "host@example.com"},
			userToken:   {UserID: plainUserID, Email: "user@example.com"},
			adminToken:  {UserID: adminUserID, Email: "admin@example.com"},
			influToken:  {UserID: influUserID, Email: "influ@example.com"},
			orphanToken: {UserID: orphanUserID, Email: "orphan@example.com"},
		}},
		roles: &fakes.MemoryRoleStore{Roles: map[string]domainauth.Role{
			hostUserID:  domainauth.RoleHost,
			plainUserID: domainauth.RoleUser,
			adminUserID: domainauth.RoleAdmin,
			influUserID: domainauth.RoleInfluencer,
		}},
		hosts:       &fakes.MemoryScopedIDs{IDs: map[string]string{hostUserID: hostRecordID}},
		influencers: &fakes.MemoryScopedIDs{IDs: map[string]string{influUserID: influRecordID}},
	}
	f.policies = NewPolicies(PolicyOptions{Hosts: f.hosts, Influencers: f.influencers})
	f.gate = NewGate(GateOptions{
		Identities: f.identities,
		Roles:      f.roles,
		Config:     GateConfig{Bypass: bypass},
	})
	return f
}

func TestNewGate_PanicsOnMissingDeps(t *testing.T) {
	assert.Panics(t, func() { NewGate(GateOptions{Roles: &fakes.MemoryRoleStore{}}) })
	assert.Panics(t, func() { NewGate(GateOptions{Identities: &fakes.StaticIdentityResolver{}}) })
}

func TestGate_MissingCredential(t *testing.T) {
	f := newGateFixture(t, BypassConfig{Enabled: true, Secret: testSecret})
	for _, p := range []Policy{
		f.policies.Admin, f.policies.SuperAdmin, f.policies.Host,
		f.policies.Influencer, f.policies.HostOrAdmin, f.policies.Authenticated,
	} {
		d := f.gate.Authorize(context.Background(), "", p)
		assert.False(t, d.Allowed, p.Name)
		assert.Equal(t, domainauth.ReasonUnauthenticated, d.Reason, p.Name)
		assert.Equal(t, 401, d.HTTPStatus(), p.Name)
	}
	assert.Zero(t, f.identities.Calls())
	assert.Zero(t, f.roles.Calls())
}

func TestGate_MalformedCredential(t *testing.T) {
	f := newGateFixture(t, BypassConfig{})
	for _, cred := range []string{"abc", "a.b", "not a token", "a.b.c.d", "a.b.c="} {
		d := f.gate.Authorize(context.Background(), cred, f.policies.Admin)
		assert.False(t, d.Allowed, cred)
		assert.Equal(t, domainauth.ReasonUnauthenticated, d.Reason, cred)
	}
	assert.Zero(t, f.identities.Calls(), "malformed credentials must not reach the provider")
}

func TestGate_BypassSecretUnderAdminPolicy(t *testing.T) {
	f := newGateFixture(t, BypassConfig{Enabled: true, Secret: testSecret})

	d := f.gate.Authorize(context.Background(), testSecret, f.policies.Admin)

	require.True(t, d.Allowed)
	assert.Equal(t, domainauth.RoleAdmin, d.Principal.Role)
	assert.True(t, d.Principal.Bypass)
	assert.Equal(t, BypassUserID, d.Principal.Identity.UserID)
	assert.Zero(t, f.identities.Calls(), "bypass secret must never be forwarded upstream")
	assert.Zero(t, f.roles.Calls())
}

func TestGate_BypassSecretUnderOtherPolicies(t *testing.T) {
	f := newGateFixture(t, BypassConfig{Enabled: true, Secret: testSecret})
	for _, p := range []Policy{
		f.policies.SuperAdmin, f.policies.Host, f.policies.Influencer,
		f.policies.HostOrAdmin, f.policies.Authenticated,
	} {
		d := f.gate.Authorize(context.Background(), testSecret, p)
		assert.False(t, d.Allowed, p.Name)
		assert.Equal(t, domainauth.ReasonForbidden, d.Reason, p.Name)
		assert.Equal(t, 403, d.HTTPStatus(), p.Name)
	}
	assert.Zero(t, f.identities.Calls())
	assert.Zero(t, f.hosts.Calls())
	assert.Zero(t, f.influencers.Calls())
}

func TestGate_BypassDisabled(t *testing.T) {
	f := newGateFixture(t, BypassConfig{Enabled: false, Secret: testSecret})

	d := f.gate.Authorize(context.Background(), testSecret, f.policies.Admin)

	assert.False(t, d.Allowed)
	assert.Equal(t, domainauth.ReasonUnauthenticated, d.Reason)
}

func TestGate_BypassRequiresExactMatch(t *testing.T) {
	f := newGateFixture(t, BypassConfig{Enabled: true, Secret: testSecret})

	d := f.gate.Authorize(context.Background(), testSecret+"x", f.policies.Admin)

	assert.False(t, d.Allowed)
	assert.Equal(t, domainauth.ReasonUnauthenticated, d.Reason)
}

func TestGate_RejectedByProvider(t *testing.T) {
	f := newGateFixture(t, BypassConfig{})

	d := f.gate.Authorize(context.Background(), "unknown.token.sig", f.policies.Authenticated)

	assert.False(t, d.Allowed)
	assert.Equal(t, domainauth.ReasonUnauthenticated, d.Reason)
	assert.Equal(t, domainauth.ReasonUnauthenticated, d.Outcome)
	assert.Equal(t, 1, f.identities.Calls())
	assert.Zero(t, f.roles.Calls())
}

func TestGate_NoRoleRow(t *testing.T) {
	f := newGateFixture(t, BypassConfig{})
	for _, p := range []Policy{f.policies.Admin, f.policies.Authenticated, f.policies.Host} {
		d := f.gate.Authorize(context.Background(), orphanToken, p)
		assert.False(t, d.Allowed, p.Name)
		assert.Equal(t, domainauth.ReasonForbidden, d.Reason, p.Name)
		assert.Equal(t, 403, d.HTTPStatus(), p.Name)
	}
	assert.Zero(t, f.hosts.Calls())
}

func TestGate_HostPolicyResolvesHostID(t *testing.T) {
	f := newGateFixture(t, BypassConfig{})

	d := f.gate.Authorize(context.Background(), hostToken, f.policies.Host)

	require.True(t, d.Allowed)
	assert.Equal(t, domainauth.RoleHost, d.Principal.Role)
	assert.Equal(t, hostRecordID, d.Principal.Scoped.HostID)
	assert.Equal(t, hostUserID, d.Principal.Identity.UserID)
	assert.Equal(t, 1, f.hosts.Calls())
	assert.Zero(t, f.influencers.Calls())
}

func TestGate_InfluencerPolicyResolvesInfluencerID(t *testing.T) {
	f := newGateFixture(t, BypassConfig{})

	d := f.gate.Authorize(context.Background(), influToken, f.policies.Influencer)

	require.True(t, d.Allowed)
	assert.Equal(t, influRecordID, d.Principal.Scoped.InfluencerID)
	assert.Empty(t, d.Principal.Scoped.HostID)
	assert.Equal(t, 1, f.influencers.Calls())
}

func TestGate_HostWithoutHostRecord(t *testing.T) {
	f := newGateFixture(t, BypassConfig{})
	delete(f.hosts.IDs, hostUserID)

	d := f.gate.Authorize(context.Background(), hostToken, f.policies.Host)

	assert.False(t, d.Allowed)
	assert.Equal(t, domainauth.ReasonForbidden, d.Reason)
	assert.Equal(t, 1, f.hosts.Calls())
}

func TestGate_ScopedLookupCalledExactlyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	identities := mocks.NewMockIdentityResolver(ctrl)
	roles := mocks.NewMockRoleStore(ctrl)
	hosts := mocks.NewMockScopedIDResolver(ctrl)
	influencers := mocks.NewMockScopedIDResolver(ctrl)

	identities.EXPECT().Resolve(gomock.Any(), hostToken).
		Return(domainauth.Identity{UserID: hostUserID}, nil).Times(1)
	roles.EXPECT().GetRole(gomock.Any(), hostUserID).Return(domainauth.RoleHost, nil).Times(1)
	hosts.EXPECT().ResolveScopedID(gomock.Any(), hostUserID).Return(hostRecordID, nil).Times(1)

	policies := NewPolicies(PolicyOptions{Hosts: hosts, Influencers: influencers})
	gate := NewGate(GateOptions{Identities: identities, Roles: roles})

	d := gate.Authorize(context.Background(), hostToken, policies.Host)

	require.True(t, d.Allowed)
	assert.Equal(t, hostRecordID, d.Principal.Scoped.HostID)
}

func TestGate_UserUnderAdminPolicy(t *testing.T) {
	f := newGateFixture(t, BypassConfig{Enabled: true, Secret: testSecret})

	d := f.gate.Authorize(context.Background(), userToken, f.policies.Admin)

	assert.False(t, d.Allowed)
	assert.Equal(t, domainauth.ReasonForbidden, d.Reason)
	assert.Equal(t, 403, d.HTTPStatus())
}

func TestGate_RoleMatrix(t *testing.T) {
	f := newGateFixture(t, BypassConfig{})
	f.roles.Roles["u-manager"] = domainauth.RoleManager
	f.roles.Roles["u-super"] = domainauth.RoleSuperAdmin
	f.identities.Tokens["manager.token.sig"] = domainauth.Identity{UserID: "u-manager"}
	f.identities.Tokens["super.token.sig"] = domainauth.Identity{UserID: "u-super"}

	tests := []struct {
		name   string
		token  string
		policy Policy
		allow  bool
	}{
		{"manager is admin family", "manager.token.sig", f.policies.Admin, true},
		{"super admin is admin family", "super.token.sig", f.policies.Admin, true},
		{"admin is admin family", adminToken, f.policies.Admin, true},
		{"host is not admin family", hostToken, f.policies.Admin, false},
		{"influencer is not admin family", influToken, f.policies.Admin, false},
		{"admin is not super admin", adminToken, f.policies.SuperAdmin, false},
		{"super admin", "super.token.sig", f.policies.SuperAdmin, true},
		{"host in host-or-admin", hostToken, f.policies.HostOrAdmin, true},
		{"admin in host-or-admin", adminToken, f.policies.HostOrAdmin, true},
		{"manager not in host-or-admin", "manager.token.sig", f.policies.HostOrAdmin, false},
		{"user not in host-or-admin", userToken, f.policies.HostOrAdmin, false},
		{"admin not host", adminToken, f.policies.Host, false},
		{"host not influencer", hostToken, f.policies.Influencer, false},
		{"user is authenticated", userToken, f.policies.Authenticated, true},
		{"influencer is authenticated", influToken, f.policies.Authenticated, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := f.gate.Authorize(context.Background(), tt.token, tt.policy)
			assert.Equal(t, tt.allow, d.Allowed)
			if !tt.allow {
				assert.Equal(t, domainauth.ReasonForbidden, d.Reason)
			}
		})
	}
}

func TestGate_ProviderFailureFailsClosed(t *testing.T) {
	f := newGateFixture(t, BypassConfig{})
	f.identities.Err = context.DeadlineExceeded

	d := f.gate.Authorize(context.Background(), adminToken, f.policies.Admin)

	assert.False(t, d.Allowed)
	assert.Equal(t, domainauth.ReasonUpstreamError, d.Reason)
	assert.Equal(t, domainauth.ReasonUnauthenticated, d.Outcome)
	assert.Equal(t, 401, d.HTTPStatus())
	assert.ErrorIs(t, d.Cause, context.DeadlineExceeded)
	assert.Zero(t, f.roles.Calls())
}

func TestGate_RoleStoreFailureFailsClosed(t *testing.T) {
	f := newGateFixture(t, BypassConfig{})
	f.roles.Err = errors.New("connection refused")

	d := f.gate.Authorize(context.Background(), adminToken, f.policies.Admin)

	assert.False(t, d.Allowed)
	assert.Equal(t, domainauth.ReasonUpstreamError, d.Reason)
	assert.Equal(t, 403, d.HTTPStatus())
}

func TestGate_ScopedLookupFailureFailsClosed(t *testing.T) {
	f := newGateFixture(t, BypassConfig{})
	f.hosts.Err = errors.New("timeout")

	d := f.gate.Authorize(context.Background(), hostToken, f.policies.Host)

	assert.False(t, d.Allowed)
	assert.Equal(t, domainauth.ReasonUpstreamError, d.Reason)
	assert.Equal(t, 403, d.HTTPStatus())
}

func TestGate_EmptyIdentityIsUnauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	identities := mocks.NewMockIdentityResolver(ctrl)
	roles := mocks.NewMockRoleStore(ctrl)
	identities.EXPECT().Resolve(gomock.Any(), userToken).Return(domainauth.Identity{}, nil)

	gate := NewGate(GateOptions{Identities: identities, Roles: roles})
	d := gate.Authorize(context.Background(), userToken, Policy{
		Name:      "authenticated",
		Permitted: domainauth.RolesAtLeast(domainauth.RoleUser),
	})

	assert.False(t, d.Allowed)
	assert.Equal(t, domainauth.ReasonUnauthenticated, d.Reason)
}

func TestGate_PanicInLookupIsDenied(t *testing.T) {
	ctrl := gomock.NewController(t)
	identities := mocks.NewMockIdentityResolver(ctrl)
	roles := mocks.NewMockRoleStore(ctrl)
	identities.EXPECT().Resolve(gomock.Any(), userToken).Return(domainauth.Identity{UserID: plainUserID}, nil)
	roles.EXPECT().GetRole(gomock.Any(), plainUserID).DoAndReturn(
		func(context.Context, string) (domainauth.Role, error) { panic("boom") },
	)

	gate := NewGate(GateOptions{Identities: identities, Roles: roles})

	var d domainauth.Decision
	require.NotPanics(t, func() {
		d = gate.Authorize(context.Background(), userToken, Policy{
			Name:      "authenticated",
			Permitted: domainauth.RolesAtLeast(domainauth.RoleUser),
		})
	})
	assert.False(t, d.Allowed)
	assert.Equal(t, 403, d.HTTPStatus())
}

func TestGate_Idempotent(t *testing.T) {
	f := newGateFixture(t, BypassConfig{Enabled: true, Secret: testSecret})
	cases := []struct {
		token  string
		policy Policy
	}{
		{hostToken, f.policies.Host},
		{userToken, f.policies.Admin},
		{testSecret, f.policies.Admin},
		{"abc", f.policies.Authenticated},
	}
	for _, c := range cases {
		first := f.gate.Authorize(context.Background(), c.token, c.policy)
		second := f.gate.Authorize(context.Background(), c.token, c.policy)
		assert.Equal(t, first.Allowed, second.Allowed)
		assert.Equal(t, first.Reason, second.Reason)
		assert.Equal(t, first.Principal, second.Principal)
	}
}

func TestGate_ObserverReceivesDecisions(t *testing.T) {
	obs := &recordingObserver{}
	f := newGateFixture(t, BypassConfig{})
	gate := NewGate(GateOptions{
		Identities: f.identities,
		Roles:      f.roles,
		Config:     GateConfig{Observer: obs},
	})

	gate.Authorize(context.Background(), hostToken, f.policies.Host)
	gate.Authorize(context.Background(), "", f.policies.Admin)

	require.Len(t, obs.decisions, 2)
	assert.Equal(t, []string{"host", "admin"}, obs.policies)
	assert.True(t, obs.decisions[0].Allowed)
	assert.Equal(t, domainauth.ReasonUnauthenticated, obs.decisions[1].Reason)
}

func TestGateObservers_FanOut(t *testing.T) {
	a, b := &recordingObserver{}, &recordingObserver{}
	GateObservers{a, nil, b}.ObserveDecision("admin", domainauth.Allow(domainauth.Principal{}), time.Millisecond)
	assert.Equal(t, []string{"admin"}, a.policies)
	assert.Equal(t, []string{"admin"}, b.policies)
}

func TestGate_ConcurrentUse(t *testing.T) {
	f := newGateFixture(t, BypassConfig{})
	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d := f.gate.Authorize(context.Background(), hostToken, f.policies.Host)
			assert.True(t, d.Allowed)
		}()
	}
	wg.Wait()
	assert.Equal(t, 32, f.hosts.Calls())
}
