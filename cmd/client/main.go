package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-search-keeper/internal/adapter"
	"github.com/MKhiriev/go-search-keeper/internal/client"
	"github.com/MKhiriev/go-search-keeper/internal/config"
	"github.com/MKhiriev/go-search-keeper/internal/logger"
	"github.com/MKhiriev/go-search-keeper/internal/service"
	"github.com/MKhiriev/go-search-keeper/internal/store"
	"github.com/MKhiriev/go-search-keeper/internal/tui"
	"github.com/MKhiriev/go-search-keeper/internal/workers"
	"github.com/MKhiriev/go-search-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	log := logger.NewClientLogger("go-search-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	adapters, err := adapter.NewClientAdapters(cfg.Adapter, cfg.Storage.ImagesDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create adapters")
	}

	services := service.NewClientServices(storages, adapters, cfg.App, log)
	bgWorkers := workers.NewClientWorkers(services, cfg.Workers, log)

	ui, err := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, bgWorkers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
