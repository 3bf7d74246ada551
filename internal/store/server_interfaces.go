package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-search-keeper/models"
)

//go:generate mockgen -source=server_interfaces.go -destination=../mock/server_store_mock.go -package=mock

// Document is an opened file served by the catalog server. The caller owns
// Content and must close it.
type Document struct {
	Name    string
	ModTime time.Time
	Content io.ReadSeekCloser
}

// FeedSource hands out the catalog feed document.
type FeedSource interface {
	OpenFeed(ctx context.Context) (Document, error)
}

// ImageSource hands out catalog images by id.
type ImageSource interface {
	OpenImage(ctx context.Context, id string) (Document, error)
}

// UsageReportRepository persists usage logs submitted by handsets.
type UsageReportRepository interface {
	Append(ctx context.Context, report models.UsageReport) error
	List(ctx context.Context) ([]models.UsageReport, error)
}
