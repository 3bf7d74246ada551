package store

import (
	"context"

	"github.com/MKhiriev/go-search-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// CatalogWriter is the write side of a sync: every call goes through one
// batched transaction. *Batch implements it.
type CatalogWriter interface {
	UpsertMenu(ctx context.Context, menu models.Menu) (bool, error)
	UpsertMenuItem(ctx context.Context, item models.MenuItem) (bool, error)
	Delete(ctx context.Context, table, id string) (bool, error)
	DeleteMenuItemsByMenu(ctx context.Context, menuID string) (int64, error)
	MenuIDs(ctx context.Context) ([]string, error)
	Close() error
}

// CatalogRepository is the local catalog mirrored from the server feed.
type CatalogRepository interface {
	BeginBatch(ctx context.Context) (CatalogWriter, error)
	TableHasValidData(ctx context.Context, table, idColumn, labelColumn string) (bool, error)
	ListMenus(ctx context.Context) ([]models.Menu, error)
	ListMenuItems(ctx context.Context, menuID, parentID string) ([]models.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (models.MenuItem, error)
	SearchMenuItems(ctx context.Context, keyword string, limit uint64) ([]models.MenuItem, error)
}

// UsageLogRepository is the outbound queue of search-usage logs.
type UsageLogRepository interface {
	Add(ctx context.Context, log models.UsageLog) (int64, error)
	Oldest(ctx context.Context) (models.UsageLog, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// SettingsStorage is a persistent string key/value store.
type SettingsStorage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
