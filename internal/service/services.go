package service

import (
	"github.com/MKhiriev/go-search-keeper/internal/logger"
	"github.com/MKhiriev/go-search-keeper/internal/store"
)

// Services is the reference catalog server's service layer.
type Services struct {
	FeedService        FeedService
	UsageReportService UsageReportService
}

func NewServices(storages *store.ServerStorages, logger *logger.Logger) *Services {
	return &Services{
		FeedService: NewFeedService(storages.Feed, storages.Images, logger),
		UsageReportService: NewUsageReportValidationService().
			Wrap(NewUsageReportService(storages.UsageReports, logger)),
	}
}
