package auth

import "time"

// Steam OpenID 2.0 endpoint and fixed parameters
const (
	SteamOpenIDEndpoint = "https://steamcommunity.com/openid/login"
	OpenIDNamespace     = "http://specs.openid.net/auth/2.0"
	OpenIDIdentifier    = "http://specs.openid.net/auth/2.0/identifier_select"
	OpenIDModeSetup     = "checkid_setup"
)

// SteamID64Base is the lowest 64-bit Steam account ID for individual accounts.
const SteamID64Base = 76561197960265728

// DefaultAvatar is shown for mock users.
const DefaultAvatar = "https://avatars.steamstatic.com/fef49e7fa7e1997310d705b2a6158ff8dc1cdfeb_full.jpg"

// Token settings
const (
	TokenIssuer     = "skintrade"
	DefaultTokenTTL = 24 * time.Hour
	ClaimSessionID  = "sid"
)

const (
	ErrMsgEmptySecret = "token secret must not be empty"
)
