// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds handset-level values reported with usage logs.
	App App `envPrefix:"APP_"`

	// Storage holds the local database, settings file and image directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote endpoints the client talks to.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds intervals of the background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Server holds the settings of the reference catalog server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds handset identity values.
type App struct {
	// HandsetID identifies the device in submitted usage logs.
	// Env: APP_HANDSET_ID
	HandsetID string `env:"HANDSET_ID"`

	// Location is a free-form location reported with usage logs.
	// Env: APP_LOCATION
	Location string `env:"LOCATION"`
}

// Storage groups the local persistence settings.
type Storage struct {
	// DB holds the embedded database settings.
	DB DB `envPrefix:"DB_"`

	// Settings holds the key/value settings file location.
	Settings Settings `envPrefix:"SETTINGS_"`

	// Images holds the directory synchronized images are written to.
	Images Images `envPrefix:"IMAGES_"`
}

// DB holds connection settings for the embedded SQLite database.
type DB struct {
	// DSN is the SQLite file path or URI.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Settings holds the location of the key/value settings file.
type Settings struct {
	// Path is the JSON file holding persisted settings such as the
	// catalog version.
	// Env: STORAGE_SETTINGS_PATH
	Path string `env:"PATH"`
}

// Images holds the local image directory.
type Images struct {
	// Dir is where image attachments are stored, one file per image id.
	// Env: STORAGE_IMAGES_DIR
	Dir string `env:"DIR"`
}

// Adapter holds the remote endpoints and the image backend selection.
type Adapter struct {
	// FeedURL is the catalog feed endpoint fetched by every sync.
	// Env: ADAPTER_FEED_URL
	FeedURL string `env:"FEED_URL"`

	// UsageURL is the base URL usage logs are submitted to.
	// Env: ADAPTER_USAGE_URL
	UsageURL string `env:"USAGE_URL"`

	// RequestTimeout bounds connecting and every single read.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ImagesBackend selects the image source: "http", "minio" or "none".
	// Env: ADAPTER_IMAGES_BACKEND
	ImagesBackend string `env:"IMAGES_BACKEND"`

	// ImagesBaseURL is used by the "http" backend: GET <base>/<id>.
	// Env: ADAPTER_IMAGES_BASE_URL
	ImagesBaseURL string `env:"IMAGES_BASE_URL"`

	// Minio holds object storage credentials for the "minio" backend.
	Minio Minio `envPrefix:"MINIO_"`
}

// Minio holds object storage settings.
type Minio struct {
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Bucket    string `env:"BUCKET"`
	UseTLS    bool   `env:"USE_TLS"`
}

// Workers holds background job intervals.
type Workers struct {
	// SyncInterval is how often the periodic catalog sync runs.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// UsageSubmitInterval is how often pending usage logs are submitted.
	// Env: WORKERS_USAGE_SUBMIT_INTERVAL
	UsageSubmitInterval time.Duration `env:"USAGE_SUBMIT_INTERVAL"`
}

// Server holds the settings of the catalog server binary.
type Server struct {
	// HTTPAddress is the listen address, e.g. ":8080".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// FeedPath is the JSON catalog document served on every feed request.
	// Env: SERVER_FEED_PATH
	FeedPath string `env:"FEED_PATH"`

	// ImagesDir holds image files served by id. Empty disables the route.
	// Env: SERVER_IMAGES_DIR
	ImagesDir string `env:"IMAGES_DIR"`

	// UsageLogPath is the JSON-lines file accepted usage logs are appended to.
	// Env: SERVER_USAGE_LOG_PATH
	UsageLogPath string `env:"USAGE_LOG_PATH"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
