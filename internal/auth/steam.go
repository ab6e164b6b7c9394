package auth

import (
	"fmt"
	"math/rand/v2"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/SkinTrade_Go/internal/domain"
)

// SteamLoginURL builds the OpenID checkid_setup redirect for returnTo. The realm is the
// scheme and host of returnTo. The callback is never verified: login is a stub.
func SteamLoginURL(returnTo string) (string, error) {
	ret, err := url.Parse(returnTo)
	if err != nil || ret.Scheme == "" || ret.Host == "" {
		return "", fmt.Errorf("%w: return url %q", domain.ErrInvalidInput, returnTo)
	}
	realm := ret.Scheme + "://" + ret.Host

	q := url.Values{}
	q.Set("openid.ns", OpenIDNamespace)
	q.Set("openid.mode", OpenIDModeSetup)
	q.Set("openid.return_to", ret.String())
	q.Set("openid.realm", realm)
	q.Set("openid.identity", OpenIDIdentifier)
	q.Set("openid.claimed_id", OpenIDIdentifier)

	return SteamOpenIDEndpoint + "?" + q.Encode(), nil
}

// MockUser creates the verified account the stub login hands out.
func MockUser(name string, now time.Time) domain.User {
	name = strings.TrimSpace(name)
	if name == "" {
		name = domain.DefaultUserName
	}
	return domain.User{
		ID:       uuid.New().String(),
		Name:     name,
		Avatar:   DefaultAvatar,
		SteamID:  strconv.FormatUint(SteamID64Base+uint64(rand.Uint32()), 10),
		Verified: true,
		JoinDate: now,
	}
}
