package adapter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-search-keeper/internal/logger"
)

// ErrInvalidImageID is returned for ids that cannot be used as file names.
var ErrInvalidImageID = errors.New("invalid image id")

// imagePath maps an image id to its file inside dir.
func imagePath(dir, id string) (string, error) {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidImageID, id)
	}
	return filepath.Join(dir, id), nil
}

// removeImages deletes local copies of ids. Missing files are not an error.
func removeImages(ctx context.Context, dir string, ids []string) error {
	var errs []error
	for _, id := range ids {
		path, err := imagePath(dir, id)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err = os.Remove(path); err != nil && !os.IsNotExist(err) {
			logger.FromContext(ctx).Err(err).
				Str("func", "removeImages").
				Str("image_id", id).
				Msg("failed to remove image")
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// noopImageSync is used when no image backend is configured.
type noopImageSync struct{}

// NewNoopImageSync returns an [ImageSync] that ignores every request.
func NewNoopImageSync() ImageSync {
	return noopImageSync{}
}

func (noopImageSync) Sync(ctx context.Context, updated, deleted []string) error {
	logger.FromContext(ctx).Debug().
		Str("func", "noopImageSync.Sync").
		Int("updated", len(updated)).
		Int("deleted", len(deleted)).
		Msg("image backend disabled, skipping")
	return nil
}
