package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"materio/internal/catalog"
	"materio/internal/config"
	"materio/internal/db"
	"materio/internal/estimate"
	"materio/internal/handlers"
	applog "materio/internal/log"
	"materio/internal/project"
	"materio/internal/server"
	"materio/internal/substitution"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if err := applog.SetLevel(cfg.LogLevel); err != nil {
		log.Fatalf("invalid log level: %v", err)
	}

	ctx := context.Background()

	database, err := db.Configure(cfg.Database)
	if err != nil {
		log.Fatalf("failed to configure database: %v", err)
	}

	repository := catalog.NewRepository(database)
	if err := repository.Seed(ctx); err != nil {
		log.Fatalf("failed to seed catalog: %v", err)
	}

	projectStore, err := project.NewStore(cfg.Storage.ProjectDir)
	if err != nil {
		log.Fatalf("failed to prepare project storage: %v", err)
	}

	if err := os.MkdirAll(cfg.Storage.UploadDir, 0o755); err != nil {
		log.Fatalf("failed to prepare upload storage: %v", err)
	}

	srv, err := server.New(server.Config{
		Addr:      cfg.Server.Addr,
		UploadDir: cfg.Storage.UploadDir,
		Handlers: handlers.Dependencies{
			Database:       database,
			Catalog:        repository,
			Finder:         substitution.NewFinder(repository),
			Estimator:      estimate.NewCalculator(repository),
			Projects:       projectStore,
			UploadDir:      cfg.Storage.UploadDir,
			MaxUploadBytes: cfg.Storage.MaxUploadBytes,
		},
	})
	if err != nil {
		log.Fatalf("failed to build server: %v", err)
	}

	go func() {
		applog.Info(ctx, "starting http server", "addr", cfg.Server.Addr)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server encountered an error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	<-sigCh

	applog.Info(ctx, "shutting down http server")
	if err := srv.Stop(); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
}
