package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-search-keeper/internal/store"
	"github.com/MKhiriev/go-search-keeper/models"
)

// ClientSyncService mirrors the server catalog into the local store.
// At most one sync runs at a time.
type ClientSyncService interface {
	// Start launches a sync in the background and returns its event stream.
	// The channel receives nodeCount/node progress (best effort, may be
	// dropped) and exactly one terminal SUCCESS or ERROR event, then closes.
	// A canceled sync closes the channel without a terminal event.
	// Returns ErrSyncInProgress if a sync is already running.
	Start(ctx context.Context) (<-chan models.SyncEvent, error)

	// Run performs a sync and blocks until it ends. It returns nil on
	// success and adapter.ErrCanceled when canceled.
	Run(ctx context.Context) error

	// Cancel requests cancellation of the running sync. It is a no-op when
	// nothing runs.
	Cancel()

	// Wait blocks until the running sync, if any, has ended and committed
	// what it applied. It returns ctx.Err() if ctx ends first.
	Wait(ctx context.Context) error

	// State returns the state of the current or last sync.
	State() models.SyncState

	// CurrentVersion returns the version of the last committed feed, or ""
	// before the first successful sync.
	CurrentVersion(ctx context.Context) (string, error)

	// HasValidData reports whether the local catalog holds usable menus.
	HasValidData(ctx context.Context) (bool, error)
}

// Reconciler removes menus that are no longer part of the catalog.
type Reconciler interface {
	// Reconcile deletes every stored menu missing from seenMenuIDs together
	// with its items, and returns how many menus were removed.
	Reconcile(ctx context.Context, w store.CatalogWriter, seenMenuIDs []string) (int, error)
}

// ClientUsageService queues search-usage logs and reports them upstream.
type ClientUsageService interface {
	// Record enqueues a usage log stamped with the current time.
	Record(ctx context.Context, intervieweeID, keyword string) error

	// SubmitPending reports queued logs oldest first. It stops at the first
	// rejected or failed submission and returns how many were accepted.
	SubmitPending(ctx context.Context) (int, error)
}

// ClientCatalogService is the read side used by browse and search screens.
type ClientCatalogService interface {
	Menus(ctx context.Context) ([]models.Menu, error)
	Children(ctx context.Context, menuID, parentID string) ([]models.MenuItem, error)
	Item(ctx context.Context, id string) (models.MenuItem, error)
	// Search finds items by keyword and records a usage log for the query.
	Search(ctx context.Context, intervieweeID, keyword string, limit uint64) ([]models.MenuItem, error)
}

// ClientJob is a background job that runs on a fixed interval.
type ClientJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
