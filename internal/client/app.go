package client

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-search-keeper/internal/logger"
	"github.com/MKhiriev/go-search-keeper/internal/service"
	"github.com/MKhiriev/go-search-keeper/internal/tui"
	"github.com/MKhiriev/go-search-keeper/internal/workers"
)

// UI is the interactive front end run by App.
type UI interface {
	Run(ctx context.Context) error
}

// syncShutdownTimeout bounds how long Run waits for a canceled sync to
// commit its open batch.
const syncShutdownTimeout = 30 * time.Second

type App struct {
	services *service.ClientServices
	workers  *workers.Workers
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, workers *workers.Workers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil || workers == nil {
		return nil, ErrNotConfigured
	}
	return &App{services: services, workers: workers, ui: ui, logger: logger}, nil
}

// Run starts the background workers, shows the UI and blocks until the user
// leaves it. A sync still running at that point is canceled, and Run returns
// only after it has committed what it applied.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	if valid, err := a.services.SyncService.HasValidData(ctx); err != nil {
		a.logger.Err(err).Str("func", "App.Run").Msg("failed to check local catalog")
	} else if !valid {
		a.logger.Info().Str("func", "App.Run").Msg("local catalog is empty, a sync is required")
	}

	a.workers.Run(ctx)
	defer func() {
		a.services.SyncService.Cancel()
		a.workers.Stop()
		a.waitForSync(ctx)
	}()

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}

func (a *App) waitForSync(ctx context.Context) {
	waitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), syncShutdownTimeout)
	defer cancel()

	if err := a.services.SyncService.Wait(waitCtx); err != nil {
		a.logger.Err(err).Str("func", "App.waitForSync").Msg("sync did not finish before shutdown")
	}
}
