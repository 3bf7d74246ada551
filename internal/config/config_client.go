package config

import (
	"fmt"
	"time"
)

// Image backend names accepted by [ClientAdapter.ImagesBackend].
const (
	ImagesBackendNone  = "none"
	ImagesBackendHTTP  = "http"
	ImagesBackendMinio = "minio"
)

// Defaults applied by [GetClientConfig] when a value is not configured.
const (
	DefaultRequestTimeout      = 30 * time.Second
	DefaultSyncInterval        = 6 * time.Hour
	DefaultUsageSubmitInterval = 10 * time.Minute
	DefaultSettingsPath        = "settings.json"
	DefaultImagesDir           = "images"
)

// ClientApp holds handset values attached to usage logs.
type ClientApp struct {
	HandsetID string
	Location  string
}

// ClientAdapter holds the remote endpoints used by the client.
type ClientAdapter struct {
	// FeedURL is the catalog feed endpoint.
	FeedURL string
	// UsageURL is the usage log submission endpoint; empty disables
	// submission.
	UsageURL string
	// RequestTimeout bounds connecting and each read of a response body.
	RequestTimeout time.Duration
	// ImagesBackend is one of ImagesBackendNone, ImagesBackendHTTP or
	// ImagesBackendMinio.
	ImagesBackend string
	// ImagesBaseURL is used by the http image backend.
	ImagesBaseURL string
	// Minio is used by the minio image backend.
	Minio Minio
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	// DSN is the SQLite connection string.
	DSN string
	// SettingsPath is the key/value settings file.
	SettingsPath string
	// ImagesDir is the local image directory.
	ImagesDir string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the periodic sync runs.
	SyncInterval time.Duration
	// UsageSubmitInterval defines how often pending usage logs are sent.
	UsageSubmitInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client config view from the merged
// structured configuration, filling defaults for optional values.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			HandsetID: cfg.App.HandsetID,
			Location:  cfg.App.Location,
		},
		Adapter: ClientAdapter{
			FeedURL:        cfg.Adapter.FeedURL,
			UsageURL:       cfg.Adapter.UsageURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			ImagesBackend:  cfg.Adapter.ImagesBackend,
			ImagesBaseURL:  cfg.Adapter.ImagesBaseURL,
			Minio:          cfg.Adapter.Minio,
		},
		Storage: ClientStorage{
			DSN:          cfg.Storage.DB.DSN,
			SettingsPath: cfg.Storage.Settings.Path,
			ImagesDir:    cfg.Storage.Images.Dir,
		},
		Workers: ClientWorkers{
			SyncInterval:        cfg.Workers.SyncInterval,
			UsageSubmitInterval: cfg.Workers.UsageSubmitInterval,
		},
	}

	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.Adapter.ImagesBackend == "" {
		clientCfg.Adapter.ImagesBackend = ImagesBackendNone
	}
	if clientCfg.Storage.SettingsPath == "" {
		clientCfg.Storage.SettingsPath = DefaultSettingsPath
	}
	if clientCfg.Storage.ImagesDir == "" {
		clientCfg.Storage.ImagesDir = DefaultImagesDir
	}
	if clientCfg.Workers.SyncInterval == 0 {
		clientCfg.Workers.SyncInterval = DefaultSyncInterval
	}
	if clientCfg.Workers.UsageSubmitInterval == 0 {
		clientCfg.Workers.UsageSubmitInterval = DefaultUsageSubmitInterval
	}

	return clientCfg
}
