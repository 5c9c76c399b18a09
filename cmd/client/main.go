package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-form-keeper/internal/adapter"
	"github.com/MKhiriev/go-form-keeper/internal/client"
	"github.com/MKhiriev/go-form-keeper/internal/config"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/service"
	"github.com/MKhiriev/go-form-keeper/internal/store"
	"github.com/MKhiriev/go-form-keeper/internal/tui"
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

	log := logger.NewClientLogger("go-form-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	services := service.NewClientServices(localStorage, serverAdapter, log)
	ui := tui.New(services, buildInfo, log)
	app := client.NewApp(services, ui, cfg.ResultsSyncInterval, log)

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
	}
}
