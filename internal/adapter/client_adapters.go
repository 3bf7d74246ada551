package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-search-keeper/internal/config"
	"github.com/MKhiriev/go-search-keeper/internal/logger"
)

// ClientAdapters groups the outbound collaborators of the client.
type ClientAdapters struct {
	Feed   FeedDownloader
	Images ImageSync
	// Usage is nil when no usage endpoint is configured.
	Usage UsageSubmitter
}

// NewClientAdapters builds every adapter from cfg. Images are stored under
// imagesDir.
func NewClientAdapters(cfg config.ClientAdapter, imagesDir string, logger *logger.Logger) (*ClientAdapters, error) {
	feed, err := NewHTTPFeedDownloader(cfg.FeedURL, cfg.RequestTimeout, logger)
	if err != nil {
		return nil, err
	}

	var images ImageSync
	switch cfg.ImagesBackend {
	case config.ImagesBackendHTTP:
		images, err = NewHTTPImageSync(cfg.ImagesBaseURL, imagesDir, cfg.RequestTimeout, logger)
	case config.ImagesBackendMinio:
		images, err = NewMinioImageSync(cfg.Minio, imagesDir, logger)
	case config.ImagesBackendNone, "":
		images = NewNoopImageSync()
	default:
		err = fmt.Errorf("unknown images backend %q", cfg.ImagesBackend)
	}
	if err != nil {
		return nil, err
	}

	adapters := &ClientAdapters{Feed: feed, Images: images}

	if cfg.UsageURL != "" {
		if adapters.Usage, err = NewHTTPUsageSubmitter(cfg.UsageURL, cfg.RequestTimeout, logger); err != nil {
			return nil, err
		}
	}

	return adapters, nil
}
