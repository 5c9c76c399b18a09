package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-form-keeper/internal/config"
	"github.com/MKhiriev/go-form-keeper/internal/events"
	"github.com/MKhiriev/go-form-keeper/internal/handler"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/server"
	"github.com/MKhiriev/go-form-keeper/internal/service"
	"github.com/MKhiriev/go-form-keeper/internal/store"
	"github.com/MKhiriev/go-form-keeper/internal/workers"
	"github.com/MKhiriev/go-form-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("go-form-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	bus := events.NewBus(cfg.Workers, log.WithComponent("events"))
	defer bus.Close()

	if err = workers.NewWorkers(bus, storages.ReportCache, log.WithComponent("workers")).Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("error starting workers")
	}

	services, err := service.NewServices(storages, bus, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, storages, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}
