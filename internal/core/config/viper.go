package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoadConfig loads configuration from file using viper.
// CLI flags > environment > config file > defaults precedence.
// Environment variables use the BP_ prefix with underscores for dots,
// e.g. BP_SCREENER_DATABASE_URL.
func LoadConfig(configPath string) (*ScreenerConfig, error) {
	v := viper.New()

	// Set defaults matching DefaultScreenerConfig
	v.SetDefault("screener.database_url", "sqlite://screener.db")
	v.SetDefault("screener.jurisdiction", "ky")
	v.SetDefault("screener.max_results", 0)
	v.SetDefault("screener.request_timeout", "30s")

	v.SetEnvPrefix("BP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Load config file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &ScreenerConfig{
		DatabaseURL:    v.GetString("screener.database_url"),
		Jurisdiction:   v.GetString("screener.jurisdiction"),
		MaxResults:     v.GetInt("screener.max_results"),
		RequestTimeout: v.GetDuration("screener.request_timeout"),
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateConfig checks for a usable database URL, jurisdiction, and
// positive timeout.
func validateConfig(cfg *ScreenerConfig) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database_url must not be empty")
	}
	if cfg.Jurisdiction == "" {
		return fmt.Errorf("jurisdiction must not be empty")
	}
	if cfg.MaxResults < 0 {
		return fmt.Errorf("max_results must not be negative, got %d", cfg.MaxResults)
	}
	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %v", cfg.RequestTimeout)
	}
	return nil
}
