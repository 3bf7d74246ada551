package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/MKhiriev/go-search-keeper/internal/logger"
	"github.com/MKhiriev/go-search-keeper/internal/utils"
)

// httpImageSync downloads images from <baseURL>/<id> into dir.
type httpImageSync struct {
	client  *utils.HTTPClient
	baseURL string
	dir     string
	logger  *logger.Logger
}

// NewHTTPImageSync constructs an [ImageSync] backed by a plain HTTP server.
func NewHTTPImageSync(baseURL, dir string, timeout time.Duration, logger *logger.Logger) (ImageSync, error) {
	u, err := normalizeURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid images url: %w", err)
	}

	client := utils.NewHTTPClient(timeout)
	client.SetTimeout(timeout)

	return &httpImageSync{
		client:  client,
		baseURL: u,
		dir:     dir,
		logger:  logger,
	}, nil
}

// Sync downloads every updated image and removes every deleted one. A
// failing image does not stop the others; all failures are joined.
func (h *httpImageSync) Sync(ctx context.Context, updated, deleted []string) error {
	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		return fmt.Errorf("create images dir: %w", err)
	}

	var errs []error
	for _, id := range updated {
		if err := h.fetch(ctx, id); err != nil {
			errs = append(errs, err)
		}
	}

	if err := removeImages(ctx, h.dir, deleted); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (h *httpImageSync) fetch(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	path, err := imagePath(h.dir, id)
	if err != nil {
		return err
	}

	src, err := url.JoinPath(h.baseURL, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrImageFetch, err)
	}

	tmp := path + ".part"
	defer os.Remove(tmp)

	resp, err := h.client.R().
		SetContext(ctx).
		SetOutput(tmp).
		Get(src)
	if err != nil {
		log.Err(err).Str("func", "httpImageSync.fetch").Str("image_id", id).Msg("image request failed")
		return fmt.Errorf("%w: %s: %w", ErrImageFetch, id, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "httpImageSync.fetch").Str("image_id", id).Msg("image request rejected")
		return fmt.Errorf("%w: %s: %w", ErrImageFetch, id, err)
	}

	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrImageFetch, id, err)
	}

	log.Debug().Str("func", "httpImageSync.fetch").Str("image_id", id).Msg("image stored")
	return nil
}
