package main

import (
	"context"
	"fmt"

	"github.com/mlevchuk/noteapp/internal/config"
	httphandler "github.com/mlevchuk/noteapp/internal/handler/http"
	"github.com/mlevchuk/noteapp/internal/logger"
	"github.com/mlevchuk/noteapp/internal/server"
	"github.com/mlevchuk/noteapp/internal/service"
	"github.com/mlevchuk/noteapp/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("noteapp-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := connectDB(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	if err = db.DetectFeatures(ctx); err != nil {
		log.Fatal().Err(err).Msg("error detecting schema features")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg, log)
	handler := httphandler.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func connectDB(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*store.DB, error) {
	switch cfg.Storage.DB.Driver {
	case config.DriverPostgres:
		return store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	case config.DriverSQLite:
		return store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	default:
		return nil, config.ErrUnknownDBDriver
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
