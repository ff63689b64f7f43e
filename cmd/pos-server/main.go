package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/kasirpos/kasirpos/internal/config"
	"github.com/kasirpos/kasirpos/internal/http"
	"github.com/kasirpos/kasirpos/internal/log"
	"github.com/kasirpos/kasirpos/internal/repository"
	"github.com/kasirpos/kasirpos/internal/service"
	"github.com/kasirpos/kasirpos/internal/storage/kv"
	"github.com/kasirpos/kasirpos/internal/telemetry"
	"github.com/kasirpos/kasirpos/pkg/cmdutil"
	"github.com/kasirpos/kasirpos/pkg/validator"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running pos server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log      config.Log
		Storage  config.Storage
		Postgres config.Postgres
		HTTP     config.HTTP
		Otel     config.Otel
		Store    config.Store
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(ctx); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	store, closeStore, err := kv.Open(ctx, cfg.Storage, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("error opening store: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.ErrorContext(ctx, "error closing store", slog.Any("error", err))
		}
	}()

	v, err := validator.NewDefaultValidator()
	if err != nil {
		return fmt.Errorf("error creating validator: %w", err)
	}

	catalogRepository := repository.NewCatalogRepository(store)
	ledgerRepository := repository.NewLedgerRepository(store)
	sessionRepository := repository.NewSessionRepository(store)

	catalogService := service.NewCatalogService(store, catalogRepository)
	checkoutService := service.NewCheckoutService(store, catalogRepository, ledgerRepository)
	reportService := service.NewReportService(catalogRepository, ledgerRepository)
	sessionService := service.NewSessionService(sessionRepository)

	if cfg.Storage.SeedDemo {
		if err := service.SeedDemo(ctx, store, catalogRepository); err != nil {
			return fmt.Errorf("error seeding demo catalog: %w", err)
		}
		logger.InfoContext(ctx, "demo catalog seeded")
	}

	interruptChan := cmdutil.InterruptChan()
	var wg sync.WaitGroup

	wg.Go(func() {
		svc := http.New(
			cfg.HTTP,
			cfg.Store,
			logger,
			v,
			store,
			catalogService,
			checkoutService,
			reportService,
			sessionService,
		)
		cleanup, err := svc.Run(ctx)
		if err != nil {
			panic(fmt.Errorf("error running http service: %w", err))
		}

		logger.InfoContext(ctx, "http service started", slog.String("address", fmt.Sprintf(":%d", cfg.HTTP.Port)))

		<-interruptChan

		logger.InfoContext(ctx, "http service is shutting down")
		if err := cleanup(ctx); err != nil {
			logger.ErrorContext(ctx, "error shutting down http service", slog.Any("error", err))
		}

		logger.InfoContext(ctx, "http service is stopped")
	})

	wg.Wait()

	return nil
}
