package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetServerConfig].
const (
	DefaultServerAddress   = ":8080"
	DefaultUsageLogPath    = "usage_logs.jsonl"
	DefaultShutdownTimeout = 10 * time.Second
)

// ServerConfig is the catalog server view of [StructuredConfig].
type ServerConfig struct {
	HTTPAddress     string
	FeedPath        string
	ImagesDir       string
	UsageLogPath    string
	ShutdownTimeout time.Duration
}

// GetServerConfig builds and validates the server config from the merged
// structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)

	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{
		HTTPAddress:     cfg.Server.HTTPAddress,
		FeedPath:        cfg.Server.FeedPath,
		ImagesDir:       cfg.Server.ImagesDir,
		UsageLogPath:    cfg.Server.UsageLogPath,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}

	if serverCfg.HTTPAddress == "" {
		serverCfg.HTTPAddress = DefaultServerAddress
	}
	if serverCfg.UsageLogPath == "" {
		serverCfg.UsageLogPath = DefaultUsageLogPath
	}
	if serverCfg.ShutdownTimeout == 0 {
		serverCfg.ShutdownTimeout = DefaultShutdownTimeout
	}

	return serverCfg
}
