package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-search-keeper/internal/adapter"
	"github.com/MKhiriev/go-search-keeper/internal/config"
	"github.com/MKhiriev/go-search-keeper/internal/logger"
	"github.com/MKhiriev/go-search-keeper/internal/store"
	"github.com/MKhiriev/go-search-keeper/models"
)

// feedServer serves whatever feed body the test last set.
type feedServer struct {
	mu     sync.Mutex
	body   string
	status int

	srv *httptest.Server
}

func newFeedServer(t *testing.T) *feedServer {
	t.Helper()

	fs := &feedServer{status: http.StatusOK}

	r := chi.NewRouter()
	r.Get("/feed", func(w http.ResponseWriter, r *http.Request) {
		fs.mu.Lock()
		body, status := fs.body, fs.status
		fs.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})

	fs.srv = httptest.NewServer(r)
	t.Cleanup(fs.srv.Close)
	return fs
}

func (fs *feedServer) set(status int, body string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.status, fs.body = status, body
}

func (fs *feedServer) url() string {
	return fs.srv.URL + "/feed"
}

func newTestStorages(t *testing.T) *store.ClientStorages {
	t.Helper()

	dir := t.TempDir()
	storages, err := store.NewClientStorages(context.Background(), config.ClientStorage{
		DSN:          filepath.Join(dir, "catalog.db"),
		SettingsPath: filepath.Join(dir, "settings.json"),
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	return storages
}

func newTestSyncService(t *testing.T, storages *store.ClientStorages, feedURL string) *clientSyncService {
	t.Helper()

	downloader, err := adapter.NewHTTPFeedDownloader(feedURL, 5*time.Second, logger.Nop())
	require.NoError(t, err)

	return NewClientSyncService(storages.CatalogRepository, storages.Settings, downloader, nil, logger.Nop()).(*clientSyncService)
}

// drain collects events until the channel closes.
func drain(t *testing.T, events <-chan models.SyncEvent) []models.SyncEvent {
	t.Helper()

	var got []models.SyncEvent
	timeout := time.After(10 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return got
			}
			got = append(got, ev)
		case <-timeout:
			t.Fatal("event channel was not closed")
			return got
		}
	}
}

func terminalEvents(events []models.SyncEvent) []models.SyncEvent {
	var out []models.SyncEvent
	for _, ev := range events {
		if ev.Terminal() {
			out = append(out, ev)
		}
	}
	return out
}

func menuIDs(t *testing.T, repo store.CatalogRepository) []string {
	t.Helper()

	menus, err := repo.ListMenus(context.Background())
	require.NoError(t, err)

	ids := make([]string, 0, len(menus))
	for _, m := range menus {
		ids = append(ids, m.ID)
	}
	return ids
}
