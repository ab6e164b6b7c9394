package auth

import (
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SkinTrade_Go/internal/domain"
)

func TestSteamLoginURL(t *testing.T) {
	raw, err := SteamLoginURL("https://skintrade.example/api/v1/auth/steam/callback")
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "steamcommunity.com", u.Host)
	assert.Equal(t, "/openid/login", u.Path)

	q := u.Query()
	assert.Equal(t, OpenIDModeSetup, q.Get("openid.mode"))
	assert.Equal(t, OpenIDNamespace, q.Get("openid.ns"))
	assert.Equal(t, "https://skintrade.example", q.Get("openid.realm"))
	assert.Equal(t, "https://skintrade.example/api/v1/auth/steam/callback", q.Get("openid.return_to"))
	assert.Equal(t, OpenIDIdentifier, q.Get("openid.claimed_id"))
}

func TestSteamLoginURL_RejectsRelative(t *testing.T) {
	_, err := SteamLoginURL("/callback")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMockUser(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	u := MockUser("  ", now)
	assert.Equal(t, domain.DefaultUserName, u.Name)
	assert.True(t, u.Verified)
	assert.Equal(t, now, u.JoinDate)
	assert.NotEmpty(t, u.ID)

	steamID, err := strconv.ParseUint(u.SteamID, 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, steamID, uint64(SteamID64Base))

	assert.Equal(t, "Gabe", MockUser("Gabe", now).Name)
}

func TestTokenManager_RoundTrip(t *testing.T) {
	m, err := NewTokenManager("secret", time.Hour)
	require.NoError(t, err)

	token, expires, err := m.Issue("session-1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, time.Minute)

	sid, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "session-1", sid)
}

func TestTokenManager_Rejects(t *testing.T) {
	m, err := NewTokenManager("secret", time.Hour)
	require.NoError(t, err)
	other, err := NewTokenManager("other-secret", time.Hour)
	require.NoError(t, err)

	foreign, _, err := other.Issue("s")
	require.NoError(t, err)

	expiredMgr, err := NewTokenManager("secret", time.Minute)
	require.NoError(t, err)
	expiredMgr.now = func() time.Time { return time.Now().Add(-time.Hour) }
	expired, _, err := expiredMgr.Issue("s")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{SessionID: "s"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noSID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: TokenIssuer},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":      "not-a-token",
		"wrong secret": foreign,
		"expired":      expired,
		"alg none":     noneToken,
		"missing sid":  noSID,
		"empty":        "",
	}
	for name, tok := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := m.Parse(tok)
			assert.ErrorIs(t, err, domain.ErrInvalidToken)
		})
	}
}

func TestNewTokenManager_EmptySecret(t *testing.T) {
	_, err := NewTokenManager("", time.Hour)
	assert.Error(t, err)
}
