// Package config provides centralized runtime configuration for Droptrack.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// RuntimeConfig holds runtime values that would otherwise be hardcoded as
// magic numbers throughout the codebase.
type RuntimeConfig struct {
	// Storage configuration
	Storage StorageConfig

	// Refresh simulation configuration
	Refresh RefreshConfig
}

// StorageConfig holds storage-related configuration.
type StorageConfig struct {
	// Path is the database directory. Empty uses the XDG default.
	Path string

	// InMemory forces in-memory storage (testing, ephemeral runs).
	InMemory bool
}

// RefreshConfig holds refresh-simulation configuration.
type RefreshConfig struct {
	// TickInterval is how often the background timer fires.
	// Default: 1h
	TickInterval time.Duration

	// Threshold is the elapsed time since the last refresh that triggers
	// a simulation pass. Default: 24h
	Threshold time.Duration

	// AirdropMinAge is the minimum age before an incomplete airdrop is
	// eligible for random completion. Default: 72h
	AirdropMinAge time.Duration

	// AirdropCompleteChance is the per-item completion probability.
	// Default: 0.3
	AirdropCompleteChance float64

	// TestnetMaxAdvance is the exclusive upper bound on the random progress
	// increment per testnet. Default: 20
	TestnetMaxAdvance int
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Refresh: RefreshConfig{
			TickInterval:          time.Hour,
			Threshold:             24 * time.Hour,
			AirdropMinAge:         72 * time.Hour,
			AirdropCompleteChance: 0.3,
			TestnetMaxAdvance:     20,
		},
	}
}

// Load builds the runtime configuration from defaults, an optional .env
// file in the working directory, and DROPTRACK_* environment variables.
func Load() *RuntimeConfig {
	// Missing .env is fine; explicit env always wins because godotenv
	// does not overwrite existing variables.
	_ = godotenv.Load()

	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()
	return cfg
}

// loadFromEnv loads configuration overrides from environment variables.
func (c *RuntimeConfig) loadFromEnv() {
	if v := os.Getenv("DROPTRACK_DATABASE"); v != "" {
		if v == ":memory:" {
			c.Storage.InMemory = true
		} else {
			c.Storage.Path = v
		}
	}
	if v := os.Getenv("DROPTRACK_REFRESH_TICK"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.Refresh.TickInterval = d
		}
	}
	if v := os.Getenv("DROPTRACK_REFRESH_THRESHOLD"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.Refresh.Threshold = d
		}
	}
	if v := os.Getenv("DROPTRACK_AIRDROP_MIN_AGE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			c.Refresh.AirdropMinAge = d
		}
	}
	if v := os.Getenv("DROPTRACK_AIRDROP_COMPLETE_CHANCE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			c.Refresh.AirdropCompleteChance = f
		}
	}
	if v := os.Getenv("DROPTRACK_TESTNET_MAX_ADVANCE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			c.Refresh.TestnetMaxAdvance = n
		}
	}
}

// ReloadFromEnv reloads configuration from environment variables.
// This is useful for testing or when environment variables change.
func (c *RuntimeConfig) ReloadFromEnv() {
	c.loadFromEnv()
}
