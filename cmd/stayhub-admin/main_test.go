package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayhub/stayhub-web/config"
	"github.com/stayhub/stayhub-web/internal/adapters/devauth"
	domainauth "github.com/stayhub/stayhub-web/internal/domain/auth"
	"github.com/stayhub/stayhub-web/internal/domain/model"
	"github.com/stayhub/stayhub-web/internal/util"
)

type fakeRoleAdmin struct {
	items    []*model.RoleAssignment
	err      error
	actors   []domainauth.Principal
	assigned []model.SetRoleRequest
	revoked  []string
	page     util.Page
	filter   string
}

func (f *fakeRoleAdmin) List(_ context.Context, p util.Page, role string) ([]*model.RoleAssignment, error) {
	f.page, f.filter = p, role
	return f.items, f.err
}

func (f *fakeRoleAdmin) Assign(
	_ context.Context,
	actor domainauth.Principal,
	req model.SetRoleRequest,
) (*model.RoleAssignment, error) {
	f.actors = append(f.actors, actor)
	f.assigned = append(f.assigned, req)
	if f.err != nil {
		return nil, f.err
	}
	return &model.RoleAssignment{UserID: req.UserID, Role: req.Role}, nil
}

func (f *fakeRoleAdmin) Revoke(_ context.Context, actor domainauth.Principal, userID string) error {
	f.actors = append(f.actors, actor)
	f.revoked = append(f.revoked, userID)
	return f.err
}

func TestGrantRole(t *testing.T) {
	svc := &fakeRoleAdmin{}
	var out bytes.Buffer

	err := grantRole(context.Background(), svc, &out, roleOptions{
		UserID:      "u-42",
		Role:        "Host",
		DisplayName: "Jeju Stays",
		Actor:       "ops@stayhub",
	})
	require.NoError(t, err)

	require.Len(t, svc.assigned, 1)
	assert.Equal(t, domainauth.RoleHost, svc.assigned[0].Role)
	assert.Equal(t, "Jeju Stays", svc.assigned[0].DisplayName)
	assert.Equal(t, domainauth.RoleSuperAdmin, svc.actors[0].Role)
	assert.Equal(t, "ops@stayhub", svc.actors[0].Identity.UserID)
	assert.Equal(t, "granted host to u-42\n", out.String())
}

func TestGrantRole_UnknownRoleNeverReachesService(t *testing.T) {
	svc := &fakeRoleAdmin{}
	err := grantRole(context.Background(), svc, &bytes.Buffer{}, roleOptions{UserID: "u-1", Role: "owner"})
	require.Error(t, err)
	assert.Empty(t, svc.assigned)
}

func TestRevokeRole(t *testing.T) {
	svc := &fakeRoleAdmin{}
	var out bytes.Buffer
	require.NoError(t, revokeRole(context.Background(), svc, &out, roleOptions{UserID: "u-7", Actor: defaultActor}))
	assert.Equal(t, []string{"u-7"}, svc.revoked)
	assert.Equal(t, "revoked role of u-7\n", out.String())

	svc.err = errors.New("boom")
	assert.ErrorContains(t, revokeRole(context.Background(), svc, &out, roleOptions{UserID: "u-7"}), "boom")
}

func TestListRoles(t *testing.T) {
	grantor := "ops"
	updated := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	svc := &fakeRoleAdmin{items: []*model.RoleAssignment{
		{UserID: "u-1", Role: domainauth.RoleAdmin, GrantedBy: &grantor, UpdatedAt: updated},
		{UserID: "u-2", Role: domainauth.RoleInfluencer, UpdatedAt: updated},
	}}
	var out bytes.Buffer

	require.NoError(t, listRoles(context.Background(), svc, &out, roleOptions{Role: "admin", Limit: 5}))
	assert.Equal(t, 5, svc.page.Size)
	assert.Equal(t, "admin", svc.filter)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "GRANTED BY")
	assert.Contains(t, lines[1], "u-1")
	assert.Contains(t, lines[1], "2026-03-01T09:30:00Z")
	assert.Contains(t, lines[2], "-")

	out.Reset()
	require.NoError(t, listRoles(context.Background(), &fakeRoleAdmin{}, &out, roleOptions{Limit: 5}))
	assert.Equal(t, "no role assignments\n", out.String())
}

func TestParseRoleFlags(t *testing.T) {
	opts, err := parseRoleFlags("grant-role", []string{"--user", " u-1 ", "--role", "admin"})
	require.NoError(t, err)
	assert.Equal(t, "u-1", opts.UserID)
	assert.Equal(t, defaultActor, opts.Actor)
	assert.Equal(t, util.DefaultPageSize, opts.Limit)
	assert.Equal(t, defaultCommandTimeout, opts.Timeout)

	for _, args := range [][]string{
		{"--limit", "0"},
		{"--limit", "1000"},
		{"--timeout", "0s"},
		{"--actor", " "},
		{"--unknown"},
	} {
		_, err = parseRoleFlags("list-roles", args)
		assert.Error(t, err, args)
	}
}

func TestParseMigrateFlags(t *testing.T) {
	opts, err := parseMigrateFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, defaultMigrationTimeout, opts.Timeout)
	assert.False(t, opts.AllowRemote)

	_, err = parseMigrateFlags([]string{"--timeout", "-1s"})
	assert.Error(t, err)
}

func TestIsLikelyRemoteHost(t *testing.T) {
	tests := map[string]bool{
		"":                    false,
		"localhost":           false,
		"127.0.0.1":           false,
		"::1":                 false,
		"db.local":            false,
		"127.0.0.2":           false,
		"10.0.0.5":            true,
		"db.prod.example.com": true,
	}
	for host, want := range tests {
		assert.Equal(t, want, isLikelyRemoteHost(host), host)
	}
}

func TestConfirm(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, confirm(strings.NewReader("yes\n"), &out, "Proceed?"))
	assert.Equal(t, "Proceed? [y/N]: ", out.String())

	assert.Error(t, confirm(strings.NewReader("\n"), &out, "Proceed?"))
	assert.Error(t, confirm(strings.NewReader(""), &out, "Proceed?"))
}

func TestIssueDevToken(t *testing.T) {
	auth := config.AuthConfig{
		Mode: config.AuthModeMock,
		DevAuth: config.DevAuthConfig{
			UserID:   "dev-user",
			Email:    "dev@example.com",
			Secret:   "0123456789abcdef0123456789abcdef",
			TokenTTL: time.Hour,
		},
	}

	t.Run("verifiable by the server", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, issueDevToken(auth, &out, devTokenOptions{UserID: "u-host", Email: "host@example.com"}))

		prov, err := devauth.NewProvider(devauth.Config{
			UserID: "dev-user",
			Email:  "dev@example.com",
			Secret: auth.DevAuth.Secret,
		})
		require.NoError(t, err)
		id, err := prov.Resolve(context.Background(), strings.TrimSpace(out.String()))
		require.NoError(t, err)
		assert.Equal(t, "u-host", id.UserID)
		assert.Equal(t, "host@example.com", id.Email)
	})

	t.Run("oauth mode refused", func(t *testing.T) {
		a := auth
		a.Mode = config.AuthModeOAuth
		assert.Error(t, issueDevToken(a, &bytes.Buffer{}, devTokenOptions{}))
	})

	t.Run("generated secret refused", func(t *testing.T) {
		a := auth
		a.DevAuth.Secret = ""
		assert.Error(t, issueDevToken(a, &bytes.Buffer{}, devTokenOptions{}))
	})
}

func TestPrintUsageListsCommands(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printUsage(&out))
	for name := range commands() {
		assert.Contains(t, out.String(), name)
	}
}
