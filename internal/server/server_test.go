package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-search-keeper/internal/config"
	"github.com/MKhiriev/go-search-keeper/internal/handler"
	"github.com/MKhiriev/go-search-keeper/internal/logger"
	"github.com/MKhiriev/go-search-keeper/internal/service"
	"github.com/MKhiriev/go-search-keeper/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *server {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "feed.json"), []byte(`{"Version":"1"}`), 0o600))

	cfg := config.ServerConfig{
		HTTPAddress:     "127.0.0.1:0",
		FeedPath:        filepath.Join(dir, "feed.json"),
		UsageLogPath:    filepath.Join(dir, "usage.jsonl"),
		ShutdownTimeout: time.Second,
	}
	log := logger.Nop()

	storages, err := store.NewServerStorages(cfg, log)
	require.NoError(t, err)
	handlers, err := handler.NewHandlers(service.NewServices(storages, log), cfg, log)
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, log)
	require.NoError(t, err)
	return srv.(*server)
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, config.ServerConfig{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(&handler.Handlers{}, config.ServerConfig{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_ServesUntilCanceled(t *testing.T) {
	srv := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, srv.httpServer.Listen())
	addr := srv.httpServer.Addr()

	done := make(chan error, 1)
	go func() { done <- srv.serve(ctx) }()

	resp, err := http.Get("http://" + addr + "/feed")
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"Version":"1"}`, string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_ListenError(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	srv := newTestServer(t)
	srv.httpServer.server.Addr = occupied.Addr().String()

	assert.Error(t, srv.run(context.Background()))
}
