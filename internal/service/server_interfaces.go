package service

import (
	"context"

	"github.com/MKhiriev/go-search-keeper/internal/store"
	"github.com/MKhiriev/go-search-keeper/models"
)

//go:generate mockgen -source=server_interfaces.go -destination=../mock/server_service_mock.go -package=mock -exclude_interfaces=UsageReportServiceWrapper

// FeedService serves the catalog documents the client syncs from.
type FeedService interface {
	Feed(ctx context.Context) (store.Document, error)
	Image(ctx context.Context, id string) (store.Document, error)
}

// UsageReportService accepts usage logs submitted by handsets.
type UsageReportService interface {
	Submit(ctx context.Context, report models.UsageReport) error
}

// UsageReportServiceWrapper decorates a UsageReportService with additional
// behavior such as validation.
type UsageReportServiceWrapper interface {
	Wrap(UsageReportService) UsageReportService
}
