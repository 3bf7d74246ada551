package service

import (
	"context"

	"github.com/MKhiriev/go-search-keeper/internal/logger"
	"github.com/MKhiriev/go-search-keeper/internal/store"
	"github.com/MKhiriev/go-search-keeper/models"
)

type usageReportService struct {
	reports store.UsageReportRepository

	logger *logger.Logger
}

func NewUsageReportService(reports store.UsageReportRepository, logger *logger.Logger) UsageReportService {
	return &usageReportService{
		reports: reports,
		logger:  logger,
	}
}

func (u *usageReportService) Submit(ctx context.Context, report models.UsageReport) error {
	if err := u.reports.Append(ctx, report); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "usageReportService.Submit").
		Str("handset_id", report.Context.HandsetID).
		Str("keyword", report.Log.Keyword).
		Msg("usage report stored")
	return nil
}
