package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		HandsetID string `json:"handset_id"`
		Location  string `json:"location"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		Settings struct {
			Path string `json:"path"`
		} `json:"settings,omitempty"`
		Images struct {
			Dir string `json:"dir"`
		} `json:"images,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		FeedURL        string   `json:"feed_url"`
		UsageURL       string   `json:"usage_url"`
		RequestTimeout Duration `json:"request_timeout"`
		ImagesBackend  string   `json:"images_backend"`
		ImagesBaseURL  string   `json:"images_base_url"`
		Minio          struct {
			Endpoint  string `json:"endpoint"`
			AccessKey string `json:"access_key"`
			SecretKey string `json:"secret_key"`
			Bucket    string `json:"bucket"`
			UseTLS    bool   `json:"use_tls"`
		} `json:"minio,omitempty"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncInterval        Duration `json:"sync_interval"`
		UsageSubmitInterval Duration `json:"usage_submit_interval"`
	} `json:"workers,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"address"`
		FeedPath        string   `json:"feed_path"`
		ImagesDir       string   `json:"images_dir"`
		UsageLogPath    string   `json:"usage_log_path"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			HandsetID: jsonCfg.App.HandsetID,
			Location:  jsonCfg.App.Location,
		},
		Storage: Storage{
			DB:       DB{DSN: jsonCfg.Storage.DB.DSN},
			Settings: Settings{Path: jsonCfg.Storage.Settings.Path},
			Images:   Images{Dir: jsonCfg.Storage.Images.Dir},
		},
		Adapter: Adapter{
			FeedURL:        jsonCfg.Adapter.FeedURL,
			UsageURL:       jsonCfg.Adapter.UsageURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			ImagesBackend:  jsonCfg.Adapter.ImagesBackend,
			ImagesBaseURL:  jsonCfg.Adapter.ImagesBaseURL,
			Minio: Minio{
				Endpoint:  jsonCfg.Adapter.Minio.Endpoint,
				AccessKey: jsonCfg.Adapter.Minio.AccessKey,
				SecretKey: jsonCfg.Adapter.Minio.SecretKey,
				Bucket:    jsonCfg.Adapter.Minio.Bucket,
				UseTLS:    jsonCfg.Adapter.Minio.UseTLS,
			},
		},
		Workers: Workers{
			SyncInterval:        time.Duration(jsonCfg.Workers.SyncInterval),
			UsageSubmitInterval: time.Duration(jsonCfg.Workers.UsageSubmitInterval),
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			FeedPath:        jsonCfg.Server.FeedPath,
			ImagesDir:       jsonCfg.Server.ImagesDir,
			UsageLogPath:    jsonCfg.Server.UsageLogPath,
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
