package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate checks the loaded configuration and reports every problem at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Port < MinPort || c.Port > MaxPort {
		errs = append(errs, fmt.Errorf("PORT must be between %d and %d, got %d", MinPort, MaxPort, c.Port))
	}
	if c.RevealDelay <= 0 {
		errs = append(errs, fmt.Errorf("REVEAL_DELAY must be positive, got %s", c.RevealDelay))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL))
	}
	if c.SessionCapacity <= 0 {
		errs = append(errs, fmt.Errorf("SESSION_CAPACITY must be positive, got %d", c.SessionCapacity))
	}
	if c.StartingBalance < 0 {
		errs = append(errs, fmt.Errorf("STARTING_BALANCE must not be negative, got %d", c.StartingBalance))
	}
	if c.TokenSecret == "" {
		errs = append(errs, errors.New("TOKEN_SECRET must be set outside the dev environment"))
	}
	if c.RateLimitRequests <= 0 || c.RateLimitWindow <= 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_REQUESTS and RATE_LIMIT_WINDOW must be positive, got %d per %s", c.RateLimitRequests, c.RateLimitWindow))
	}
	if c.ActivityPerSession <= 0 || c.ActivityRetention <= 0 {
		errs = append(errs, fmt.Errorf("ACTIVITY_PER_SESSION and ACTIVITY_RETENTION must be positive, got %d and %s", c.ActivityPerSession, c.ActivityRetention))
	}
	if c.MaxRequestBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("MAX_REQUEST_BODY_BYTES must be positive, got %d", c.MaxRequestBodyBytes))
	}

	switch strings.ToLower(c.LogFormat) {
	case LogFormatText, LogFormatJSON:
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be %q or %q, got %q", LogFormatText, LogFormatJSON, c.LogFormat))
	}

	switch c.Environment {
	case EnvDev, EnvStaging, EnvProduction:
	default:
		errs = append(errs, fmt.Errorf("ENVIRONMENT must be one of %s, %s, %s, got %q", EnvDev, EnvStaging, EnvProduction, c.Environment))
	}

	if u, err := url.Parse(c.SteamReturnURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("STEAM_RETURN_URL must be an absolute URL, got %q", c.SteamReturnURL))
	}

	return errors.Join(errs...)
}

// Warnings lists settings that are legal but probably unintended.
func (c *Config) Warnings() []string {
	var warnings []string
	if c.TokenSecret == DevTokenSecret && !c.IsDev() {
		warnings = append(warnings, "TOKEN_SECRET is the dev default - generate a secure key with: openssl rand -hex 32")
	}
	if c.SessionTTL < c.RevealDelay {
		warnings = append(warnings, "SESSION_TTL is shorter than REVEAL_DELAY - sessions may expire mid-spin")
	}
	return warnings
}
