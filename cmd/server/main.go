package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-turf-booking/internal/config"
	"github.com/MKhiriev/go-turf-booking/internal/handler"
	"github.com/MKhiriev/go-turf-booking/internal/logger"
	"github.com/MKhiriev/go-turf-booking/internal/server"
	"github.com/MKhiriev/go-turf-booking/internal/service"
	"github.com/MKhiriev/go-turf-booking/internal/store"
	"github.com/MKhiriev/go-turf-booking/internal/workers"
	"github.com/MKhiriev/go-turf-booking/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("turf-booking-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if buildInfo.HasVersion() {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	var publisher workers.StatusPublisher
	if handlers.GRPC != nil {
		publisher = handlers.GRPC
	}
	bgWorkers := workers.NewWorkers(cfg.Workers, services.HealthService, publisher, log)

	srv, err := server.NewServer(handlers, bgWorkers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}
