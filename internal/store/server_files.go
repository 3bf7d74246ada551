package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-search-keeper/internal/logger"
)

// fileFeedSource serves the feed from a JSON file that an operator replaces
// in place. The file is reopened on every request.
type fileFeedSource struct {
	path   string
	logger *logger.Logger
}

// NewFileFeedSource returns a [FeedSource] reading the file at path.
func NewFileFeedSource(path string, logger *logger.Logger) FeedSource {
	return &fileFeedSource{path: path, logger: logger}
}

func (f *fileFeedSource) OpenFeed(ctx context.Context) (Document, error) {
	doc, err := openDocument(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Document{}, ErrFeedNotFound
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "fileFeedSource.OpenFeed").
			Str("path", f.path).
			Msg("failed to open feed file")
		return Document{}, fmt.Errorf("open feed file: %w", err)
	}
	return doc, nil
}

// dirImageSource serves images stored as flat files named by id.
type dirImageSource struct {
	dir    string
	logger *logger.Logger
}

// NewDirImageSource returns an [ImageSource] over dir. An empty dir serves
// no images.
func NewDirImageSource(dir string, logger *logger.Logger) ImageSource {
	return &dirImageSource{dir: dir, logger: logger}
}

func (d *dirImageSource) OpenImage(ctx context.Context, id string) (Document, error) {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return Document{}, ErrInvalidImageID
	}
	if d.dir == "" {
		return Document{}, ErrImageNotFound
	}

	doc, err := openDocument(filepath.Join(d.dir, id))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Document{}, ErrImageNotFound
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "dirImageSource.OpenImage").
			Str("image_id", id).
			Msg("failed to open image")
		return Document{}, fmt.Errorf("open image: %w", err)
	}
	return doc, nil
}

func openDocument(path string) (Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return Document{}, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return Document{}, err
	}
	if info.IsDir() {
		file.Close()
		return Document{}, os.ErrNotExist
	}

	return Document{
		Name:    info.Name(),
		ModTime: info.ModTime(),
		Content: file,
	}, nil
}
