package config

import "github.com/kelseyhightower/envconfig"

// Config holds application configuration loaded from environment variables.
// FallbackAPIToken and FallbackAccountID are the zero-configuration
// credentials used only while no teams are stored.
type Config struct {
	Port              int    `envconfig:"PORT" default:"8080"`
	LogLevel          string `envconfig:"LOG_LEVEL" default:"info"`
	DatabaseURL       string `envconfig:"DATABASE_URL" required:"true"`
	InviteAPIBaseURL  string `envconfig:"INVITE_API_BASE_URL" required:"true"`
	FallbackAPIToken  string `envconfig:"FALLBACK_API_TOKEN" default:""`
	FallbackAccountID string `envconfig:"FALLBACK_ACCOUNT_ID" default:""`
	Version           string `envconfig:"VERSION" default:"dev"`
}

// Load reads configuration from environment variables into a Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
