package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-search-keeper/internal/config"
	"github.com/MKhiriev/go-search-keeper/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// CatalogRepository is the SQLite-backed mirror of the server catalog.
	CatalogRepository CatalogRepository

	// UsageLogRepository queues search-usage logs until they are submitted.
	UsageLogRepository UsageLogRepository

	// Settings holds persisted key/value settings such as the feed version.
	Settings SettingsStorage

	db *DB
}

// NewClientStorages opens the SQLite database named by cfg.DSN, runs
// pending migrations and loads the settings file.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	settings, err := NewFileSettingsStorage(cfg.SettingsPath)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("settings storage error: %w", err)
	}

	return &ClientStorages{
		CatalogRepository:  NewCatalogRepository(db, logger),
		UsageLogRepository: NewUsageLogRepository(db, logger),
		Settings:           settings,
		db:                 db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
