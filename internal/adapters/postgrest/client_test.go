package postgrest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/stayhub/stayhub-web/internal/domain/auth"
	"github.com/stayhub/stayhub-web/internal/ports"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := NewClient(Config{BaseURL: srv.URL, ServiceKey: "service-key"})
	require.NoError(t, err)
	return c
}

func TestRoleStore_GetRole(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/user_roles", r.URL.Path)
		assert.Equal(t, "service-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		assert.Equal(t, "role", r.URL.Query().Get("select"))
		switch r.URL.Query().Get("user_id") {
		case "eq.u-1":
			_, _ = w.Write([]byte(`[{"role":"host"}]`))
		case "eq.u-2":
			_, _ = w.Write([]byte(`[{"role":"owner"}]`))
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	})
	store := NewRoleStore(c)
	ctx := context.Background()

	role, err := store.GetRole(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleHost, role)

	_, err = store.GetRole(ctx, "nobody")
	assert.ErrorIs(t, err, ports.ErrNotFound)

	_, err = store.GetRole(ctx, "u-2")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ports.ErrNotFound)
}

func TestScopedIDs(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rest/v1/hosts":
			_, _ = w.Write([]byte(`[{"id":"h-1"}]`))
		case "/rest/v1/influencers":
			_, _ = w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	id, err := NewHostIDs(c).ResolveScopedID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "h-1", id)

	_, err = NewInfluencerIDs(c).ResolveScopedID(ctx, "u-1")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestClient_UpstreamFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"status", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusServiceUnavailable) }},
		{"json", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte(`[{`)) }},
		{"type", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte(`[{"role":7}]`)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.handler)
			_, err := NewRoleStore(c).GetRole(context.Background(), "u-1")
			require.Error(t, err)
			assert.NotErrorIs(t, err, ports.ErrNotFound)
		})
	}
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(Config{ServiceKey: "k"})
	require.Error(t, err)
	_, err = NewClient(Config{BaseURL: "https://db.example"})
	require.Error(t, err)
}
