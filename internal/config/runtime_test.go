package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cfg := DefaultRuntimeConfig()

	assert.Equal(t, time.Hour, cfg.Refresh.TickInterval)
	assert.Equal(t, 24*time.Hour, cfg.Refresh.Threshold)
	assert.Equal(t, 72*time.Hour, cfg.Refresh.AirdropMinAge)
	assert.Equal(t, 0.3, cfg.Refresh.AirdropCompleteChance)
	assert.Equal(t, 20, cfg.Refresh.TestnetMaxAdvance)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DROPTRACK_REFRESH_THRESHOLD", "6h")
	t.Setenv("DROPTRACK_AIRDROP_COMPLETE_CHANCE", "0.5")
	t.Setenv("DROPTRACK_TESTNET_MAX_ADVANCE", "40")
	t.Setenv("DROPTRACK_DATABASE", ":memory:")

	cfg := DefaultRuntimeConfig()
	cfg.ReloadFromEnv()

	assert.Equal(t, 6*time.Hour, cfg.Refresh.Threshold)
	assert.Equal(t, 0.5, cfg.Refresh.AirdropCompleteChance)
	assert.Equal(t, 40, cfg.Refresh.TestnetMaxAdvance)
	assert.True(t, cfg.Storage.InMemory)
}

func TestEnvOverridesRejectInvalid(t *testing.T) {
	t.Setenv("DROPTRACK_REFRESH_THRESHOLD", "soon")
	t.Setenv("DROPTRACK_AIRDROP_COMPLETE_CHANCE", "1.5")
	t.Setenv("DROPTRACK_TESTNET_MAX_ADVANCE", "-5")

	cfg := DefaultRuntimeConfig()
	cfg.ReloadFromEnv()

	assert.Equal(t, 24*time.Hour, cfg.Refresh.Threshold)
	assert.Equal(t, 0.3, cfg.Refresh.AirdropCompleteChance)
	assert.Equal(t, 20, cfg.Refresh.TestnetMaxAdvance)
}

func TestDatabasePathOverride(t *testing.T) {
	t.Setenv("DROPTRACK_DATABASE", "/tmp/droptrack-test/db")

	cfg := DefaultRuntimeConfig()
	cfg.ReloadFromEnv()

	assert.Equal(t, "/tmp/droptrack-test/db", cfg.Storage.Path)
	assert.False(t, cfg.Storage.InMemory)
}
