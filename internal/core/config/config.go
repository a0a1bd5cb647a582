// Package config provides configuration management for the screener CLI.
package config

import "time"

// ScreenerConfig holds configuration for screening runs.
type ScreenerConfig struct {
	// DatabaseURL locates the rule store (sqlite:// or postgres://).
	DatabaseURL string

	// Jurisdiction is the default jurisdiction screened when the caller
	// does not pass one (e.g. "ky", "us-federal").
	Jurisdiction string

	// MaxResults caps how many ranked matches the CLI displays.
	// The core always returns the full list; display truncation is a
	// caller concern. Zero means no cap.
	MaxResults int

	// RequestTimeout bounds one whole screening evaluation. The core has
	// no internal cancellation points; the timeout wraps the full call.
	RequestTimeout time.Duration
}

// DefaultScreenerConfig returns configuration with default values.
func DefaultScreenerConfig() *ScreenerConfig {
	return &ScreenerConfig{
		DatabaseURL:    "sqlite://screener.db",
		Jurisdiction:   "ky",
		MaxResults:     0,
		RequestTimeout: 30 * time.Second,
	}
}
