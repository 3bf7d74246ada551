package store

import (
	"fmt"

	"github.com/MKhiriev/go-search-keeper/internal/config"
	"github.com/MKhiriev/go-search-keeper/internal/logger"
)

// ServerStorages groups the file-backed sources of the reference catalog
// server.
type ServerStorages struct {
	Feed         FeedSource
	Images       ImageSource
	UsageReports UsageReportRepository
}

// NewServerStorages wires the server storages from cfg.
func NewServerStorages(cfg config.ServerConfig, logger *logger.Logger) (*ServerStorages, error) {
	logger.Info().Msg("creating new server storages...")

	reports, err := NewUsageReportRepository(cfg.UsageLogPath, logger)
	if err != nil {
		return nil, fmt.Errorf("usage report storage error: %w", err)
	}

	return &ServerStorages{
		Feed:         NewFileFeedSource(cfg.FeedPath, logger),
		Images:       NewDirImageSource(cfg.ImagesDir, logger),
		UsageReports: reports,
	}, nil
}
