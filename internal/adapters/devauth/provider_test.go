package devauth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/stayhub/stayhub-web/internal/domain/auth"
	"github.com/stayhub/stayhub-web/internal/ports"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestProvider_BeginExchangeResolve(t *testing.T) {
	prov, err := NewProvider(Config{UserID: "dev-user", Email: "dev@example.com", Secret: testSecret})
	require.NoError(t, err)
	ctx := context.Background()

	url, state, nonce, err := prov.Begin(ctx, ports.BeginInput{RedirectURL: "/"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/auth/callback?code=dev&state="))
	assert.NotEmpty(t, state)
	assert.NotEmpty(t, nonce)

	ts, err := prov.Exchange(ctx, ports.ExchangeInput{Code: "dev", State: state, Nonce: nonce})
	require.NoError(t, err)
	assert.True(t, domainauth.LooksLikeToken(ts.AccessToken))
	assert.Equal(t, "dev-user", ts.Identity.UserID)

	id, err := prov.Resolve(ctx, ts.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "dev-user", id.UserID)
	assert.Equal(t, "dev@example.com", id.Email)
	assert.True(t, ts.ExpiresAt.Equal(id.ExpiresAt))
}

func TestProvider_IssueForOtherUsers(t *testing.T) {
	prov, err := NewProvider(Config{UserID: "dev-user", Email: "dev@example.com", Secret: testSecret})
	require.NoError(t, err)

	ts, err := prov.Issue("host-7", "")
	require.NoError(t, err)

	id, err := prov.Resolve(context.Background(), ts.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "host-7", id.UserID)
	assert.Empty(t, id.Email)

	_, err = prov.Issue("", "")
	require.Error(t, err)
}

func TestProvider_ResolveRejects(t *testing.T) {
	prov, err := NewProvider(Config{UserID: "u", Email: "u@example.com", Secret: testSecret, TokenTTL: time.Minute})
	require.NoError(t, err)
	other, err := NewProvider(Config{UserID: "u", Email: "u@example.com"})
	require.NoError(t, err)

	foreign, err := other.Issue("u", "")
	require.NoError(t, err)
	_, err = prov.Resolve(context.Background(), foreign.AccessToken)
	require.ErrorIs(t, err, ports.ErrInvalidCredential)

	ts, err := prov.Issue("u", "")
	require.NoError(t, err)
	prov.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = prov.Resolve(context.Background(), ts.AccessToken)
	require.ErrorIs(t, err, ports.ErrInvalidCredential)

	_, err = prov.Resolve(context.Background(), "aaa.bbb.ccc")
	require.ErrorIs(t, err, ports.ErrInvalidCredential)
}

func TestNewProvider_Validation(t *testing.T) {
	_, err := NewProvider(Config{Email: "x@example.com"})
	require.Error(t, err)
	_, err = NewProvider(Config{UserID: "u"})
	require.Error(t, err)
	_, err = NewProvider(Config{UserID: "u", Email: "x@example.com", Secret: "short"})
	require.Error(t, err)
}
