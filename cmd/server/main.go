package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-car-share/internal/config"
	"github.com/MKhiriev/go-car-share/internal/handler"
	"github.com/MKhiriev/go-car-share/internal/logger"
	"github.com/MKhiriev/go-car-share/internal/server"
	"github.com/MKhiriev/go-car-share/internal/service"
	"github.com/MKhiriev/go-car-share/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("car-share-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error migrating database schema")
	}

	storages := store.NewStorages(db, log)

	tokens := service.NewTokenRegistry()
	services := service.NewServices(storages, tokens, log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	// issued tokens die with the process
	srv, err := server.NewServer(handlers, cfg.Server, log, tokens.Reset)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
