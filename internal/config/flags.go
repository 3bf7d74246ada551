package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-feed-url catalog feed URL
//	-usage-url usage log submission URL
//	-request-timeout connect/read timeout (e.g., "30s", "1m")
//	-d database DSN
//	-settings settings file path
//	-images-dir image directory
//	-images-backend image backend (http, minio, none)
//	-images-url image base URL for the http backend
//	-sync-interval periodic sync interval
//	-usage-interval usage submission interval
//	-handset-id handset identifier
//	-location handset location
//	-a server listen address
//	-feed-file catalog document served by the server
//	-serve-images server image directory
//	-usage-log server usage log file
//	-c/-config json file path with configs
func parseFlags(name string, args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	var (
		feedURL        string
		usageURL       string
		requestTimeout time.Duration
		databaseDSN    string
		settingsPath   string
		imagesDir      string
		imagesBackend  string
		imagesURL      string
		syncInterval   time.Duration
		usageInterval  time.Duration
		handsetID      string
		location       string
		serverAddress  string
		feedFile       string
		serveImages    string
		usageLog       string
		jsonConfigPath string
	)

	fs.StringVar(&feedURL, "feed-url", "", "Catalog feed URL")
	fs.StringVar(&usageURL, "usage-url", "", "Usage log submission URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Connect/read timeout (e.g., 30s, 1m)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&settingsPath, "settings", "", "Settings file path")
	fs.StringVar(&imagesDir, "images-dir", "", "Image directory")
	fs.StringVar(&imagesBackend, "images-backend", "", "Image backend: http, minio or none")
	fs.StringVar(&imagesURL, "images-url", "", "Image base URL for the http backend")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Periodic sync interval")
	fs.DurationVar(&usageInterval, "usage-interval", 0, "Usage submission interval")
	fs.StringVar(&handsetID, "handset-id", "", "Handset identifier")
	fs.StringVar(&location, "location", "", "Handset location")
	fs.StringVar(&serverAddress, "a", "", "Server listen address")
	fs.StringVar(&feedFile, "feed-file", "", "Catalog document served by the server")
	fs.StringVar(&serveImages, "serve-images", "", "Image directory served by the server")
	fs.StringVar(&usageLog, "usage-log", "", "File accepted usage logs are appended to")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			HandsetID: handsetID,
			Location:  location,
		},
		Storage: Storage{
			DB:       DB{DSN: databaseDSN},
			Settings: Settings{Path: settingsPath},
			Images:   Images{Dir: imagesDir},
		},
		Adapter: Adapter{
			FeedURL:        feedURL,
			UsageURL:       usageURL,
			RequestTimeout: requestTimeout,
			ImagesBackend:  imagesBackend,
			ImagesBaseURL:  imagesURL,
		},
		Workers: Workers{
			SyncInterval:        syncInterval,
			UsageSubmitInterval: usageInterval,
		},
		Server: Server{
			HTTPAddress:  serverAddress,
			FeedPath:     feedFile,
			ImagesDir:    serveImages,
			UsageLogPath: usageLog,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
