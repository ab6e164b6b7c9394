package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	// LogDir additionally writes logs to timestamped files; empty logs to stdout only.
	LogDir string `env:"LOG_DIR"`

	SessionTTL      time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	SessionCapacity int           `env:"SESSION_CAPACITY" envDefault:"10000"`
	StartingBalance int           `env:"STARTING_BALANCE" envDefault:"45750"`
	RevealDelay     time.Duration `env:"REVEAL_DELAY" envDefault:"5s"`

	TokenSecret string        `env:"TOKEN_SECRET"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	YooMoneyReceiver string `env:"YOOMONEY_RECEIVER" envDefault:"410011234567890"`
	SteamReturnURL   string `env:"STEAM_RETURN_URL" envDefault:"http://localhost:8080/api/v1/auth/steam/callback"`

	// Empty paths use the seed files embedded in the binary.
	CasesPath string `env:"CASES_PATH"`
	SkinsPath string `env:"SKINS_PATH"`

	MaxRequestBodyBytes    int64         `env:"MAX_REQUEST_BODY_BYTES" envDefault:"1048576"`
	ShutdownTimeout        time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	MetricsRefreshSchedule string        `env:"METRICS_REFRESH_SCHEDULE" envDefault:"@every 30s"`

	ActivityPerSession      int           `env:"ACTIVITY_PER_SESSION" envDefault:"100"`
	ActivityRetention       time.Duration `env:"ACTIVITY_RETENTION" envDefault:"24h"`
	ActivityCleanupSchedule string        `env:"ACTIVITY_CLEANUP_SCHEDULE" envDefault:"@every 10m"`

	// X-Forwarded-For is only honoured from these addresses.
	TrustedProxies    []string      `env:"TRUSTED_PROXIES" envSeparator:","`
	RateLimitRequests int           `env:"RATE_LIMIT_REQUESTS" envDefault:"1000"`
	RateLimitWindow   time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"5m"`
}

// Load reads .env when present, then the process environment, and validates the result.
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return finish(cfg)
}

// LoadFrom parses configuration from an explicit variable map instead of the process
// environment. Unset keys take their defaults.
func LoadFrom(vars map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return finish(cfg)
}

func finish(cfg *Config) (*Config, error) {
	if cfg.TokenSecret == "" && cfg.IsDev() {
		cfg.TokenSecret = DevTokenSecret
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsDev reports whether the service runs in the dev environment.
func (c *Config) IsDev() bool {
	return c.Environment == EnvDev
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
