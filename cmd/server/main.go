package main

import (
	"context"
	"fmt"

	"github.com/opeller/authgate/internal/config"
	httphandler "github.com/opeller/authgate/internal/handler/http"
	"github.com/opeller/authgate/internal/logger"
	"github.com/opeller/authgate/internal/server"
	"github.com/opeller/authgate/internal/service"
	"github.com/opeller/authgate/internal/store"
	"github.com/opeller/authgate/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("authgate-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.Connect(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to storage")
	}
	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error migrating storage")
	}

	storages := store.NewStorages(db, log)

	pool := workers.NewPool(cfg.App.HashWorkers)
	defer pool.Close()

	services := service.NewServices(storages, cfg.App, pool, log)

	handler := httphandler.NewHandler(services, cfg.App, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
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
