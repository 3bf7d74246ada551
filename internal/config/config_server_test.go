package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewServerConfig_FillsDefaults(t *testing.T) {
	cfg := newServerConfig(&StructuredConfig{Server: Server{FeedPath: "catalog.json"}})

	assert.Equal(t, DefaultServerAddress, cfg.HTTPAddress)
	assert.Equal(t, DefaultUsageLogPath, cfg.UsageLogPath)
	assert.Equal(t, DefaultShutdownTimeout, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.ImagesDir)
	assert.NoError(t, cfg.validate())
}

func TestNewServerConfig_KeepsConfiguredValues(t *testing.T) {
	cfg := newServerConfig(&StructuredConfig{Server: Server{
		HTTPAddress:     ":9090",
		FeedPath:        "catalog.json",
		ImagesDir:       "img",
		UsageLogPath:    "logs.jsonl",
		ShutdownTimeout: time.Second,
	}})

	assert.Equal(t, ":9090", cfg.HTTPAddress)
	assert.Equal(t, "img", cfg.ImagesDir)
	assert.Equal(t, "logs.jsonl", cfg.UsageLogPath)
	assert.Equal(t, time.Second, cfg.ShutdownTimeout)
}

func TestServerConfig_Validate_RequiresFeed(t *testing.T) {
	cfg := newServerConfig(&StructuredConfig{})

	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
}
