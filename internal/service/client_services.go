package service

import (
	"github.com/MKhiriev/go-search-keeper/internal/adapter"
	"github.com/MKhiriev/go-search-keeper/internal/config"
	"github.com/MKhiriev/go-search-keeper/internal/logger"
	"github.com/MKhiriev/go-search-keeper/internal/store"
	"github.com/MKhiriev/go-search-keeper/models"
)

type ClientServices struct {
	SyncService    ClientSyncService
	UsageService   ClientUsageService
	CatalogService ClientCatalogService
	SyncJob        ClientJob
	UsageJob       ClientJob
}

func NewClientServices(storages *store.ClientStorages, adapters *adapter.ClientAdapters, app config.ClientApp, logger *logger.Logger) *ClientServices {
	syncSvc := NewClientSyncService(storages.CatalogRepository, storages.Settings, adapters.Feed, adapters.Images, logger)
	usageSvc := NewClientUsageService(storages.UsageLogRepository, adapters.Usage, models.UsageContext{
		HandsetID: app.HandsetID,
		Location:  app.Location,
	})

	return &ClientServices{
		SyncService:    syncSvc,
		UsageService:   usageSvc,
		CatalogService: NewClientCatalogService(storages.CatalogRepository, usageSvc),
		SyncJob:        NewClientSyncJob(syncSvc),
		UsageJob:       NewUsageSubmitJob(usageSvc),
	}
}
