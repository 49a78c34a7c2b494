package config

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
)

// Settings holds everything that is not a credential
type Settings struct {
	// Dashboard server
	Host string `env:"HOST" envDefault:"localhost"`
	Port int    `env:"PORT" envDefault:"4102"`

	// Origins allowed to call the dashboard API from a browser; empty means
	// same-origin only
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	// Metrics server
	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"false"`
	MetricsHost    string `env:"METRICS_HOST" envDefault:"localhost"`
	MetricsPort    int    `env:"METRICS_PORT" envDefault:"9102"`

	// Dataset
	DataPath     string `env:"DATA_PATH" envDefault:"data/activities.json"`
	HomeTimezone string `env:"HOME_TIMEZONE" envDefault:"Europe/Paris"`

	// Timeouts
	HTTPTimeout    time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	RefreshTimeout time.Duration `env:"REFRESH_TIMEOUT" envDefault:"5m"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadSettings parses settings from the environment and validates them
func LoadSettings() (*Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks ranges and enumerations
func (s *Settings) Validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}
	if s.MetricsEnabled && (s.MetricsPort < 1 || s.MetricsPort > 65535) {
		return fmt.Errorf("METRICS_PORT must be between 1 and 65535")
	}
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error")
	}
	if s.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if s.RefreshTimeout <= 0 {
		return fmt.Errorf("REFRESH_TIMEOUT must be positive")
	}
	if _, err := time.LoadLocation(s.HomeTimezone); err != nil {
		return fmt.Errorf("HOME_TIMEZONE %q is not a known timezone: %w", s.HomeTimezone, err)
	}
	return nil
}

// HomeLocation returns the reference timezone for local datetimes
func (s *Settings) HomeLocation() *time.Location {
	loc, err := time.LoadLocation(s.HomeTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
