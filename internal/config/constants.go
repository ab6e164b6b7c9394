package config

// Environments
const (
	EnvDev        = "dev"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// ServiceName tags every log line.
const ServiceName = "skintrade"

// DevTokenSecret signs session tokens in dev when TOKEN_SECRET is unset.
const DevTokenSecret = "skintrade-dev-secret"

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Port bounds
const (
	MinPort = 1
	MaxPort = 65535
)
