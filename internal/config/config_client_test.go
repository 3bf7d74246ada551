package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validStructured() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "search.db"}},
		Adapter: Adapter{FeedURL: "http://feed"},
	}
}

func TestNewClientConfig_FillsDefaults(t *testing.T) {
	cfg := newClientConfig(validStructured())

	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, ImagesBackendNone, cfg.Adapter.ImagesBackend)
	assert.Equal(t, DefaultSettingsPath, cfg.Storage.SettingsPath)
	assert.Equal(t, DefaultImagesDir, cfg.Storage.ImagesDir)
	assert.Equal(t, DefaultSyncInterval, cfg.Workers.SyncInterval)
	assert.Equal(t, DefaultUsageSubmitInterval, cfg.Workers.UsageSubmitInterval)
	assert.NoError(t, cfg.validate())
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *ClientConfig)
		want   error
	}{
		{name: "valid", mutate: func(c *ClientConfig) {}},
		{name: "empty dsn", mutate: func(c *ClientConfig) { c.Storage.DSN = "" }, want: ErrInvalidStorageConfigs},
		{name: "empty feed url", mutate: func(c *ClientConfig) { c.Adapter.FeedURL = "" }, want: ErrInvalidAdapterConfigs},
		{name: "unknown images backend", mutate: func(c *ClientConfig) { c.Adapter.ImagesBackend = "ftp" }, want: ErrInvalidImagesConfigs},
		{name: "http backend without url", mutate: func(c *ClientConfig) { c.Adapter.ImagesBackend = ImagesBackendHTTP }, want: ErrInvalidImagesConfigs},
		{name: "minio backend without bucket", mutate: func(c *ClientConfig) {
			c.Adapter.ImagesBackend = ImagesBackendMinio
			c.Adapter.Minio.Endpoint = "minio:9000"
		}, want: ErrInvalidImagesConfigs},
		{name: "minio backend complete", mutate: func(c *ClientConfig) {
			c.Adapter.ImagesBackend = ImagesBackendMinio
			c.Adapter.Minio = Minio{Endpoint: "minio:9000", Bucket: "img"}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newClientConfig(validStructured())
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
