// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks the merged [StructuredConfig]. Field-level rules live in
// [ClientConfig.validate]; the raw view only rejects negative intervals.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 || cfg.Workers.SyncInterval < 0 || cfg.Workers.UsageSubmitInterval < 0 {
		return ErrInvalidWorkerConfigs
	}
	if cfg.Server.ShutdownTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DSN == "" || cfg.Storage.SettingsPath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.FeedURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	switch cfg.Adapter.ImagesBackend {
	case ImagesBackendNone:
	case ImagesBackendHTTP:
		if cfg.Adapter.ImagesBaseURL == "" {
			return ErrInvalidImagesConfigs
		}
	case ImagesBackendMinio:
		if cfg.Adapter.Minio.Endpoint == "" || cfg.Adapter.Minio.Bucket == "" {
			return ErrInvalidImagesConfigs
		}
	default:
		return ErrInvalidImagesConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.UsageSubmitInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.FeedPath == "" || cfg.UsageLogPath == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
