package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/pantrystack/pantry-tracker/internal/config"
	"github.com/pantrystack/pantry-tracker/internal/http"
	"github.com/pantrystack/pantry-tracker/internal/log"
	"github.com/pantrystack/pantry-tracker/internal/qr"
	"github.com/pantrystack/pantry-tracker/internal/repository"
	"github.com/pantrystack/pantry-tracker/internal/service"
	"github.com/pantrystack/pantry-tracker/internal/storage/db"
	"github.com/pantrystack/pantry-tracker/internal/telemetry"
	"github.com/pantrystack/pantry-tracker/pkg/cmdutil"
	"github.com/pantrystack/pantry-tracker/pkg/validator"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running api application: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log      config.Log
		Postgres config.Postgres
		HTTP     config.HTTP
		Otel     config.Otel
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

	pgxPool, err := db.NewPgxPool(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("error creating pgx pool: %w", err)
	}
	defer pgxPool.Close()

	dbClient := db.NewClient(pgxPool)

	validate, err := validator.NewDefaultValidator()
	if err != nil {
		return fmt.Errorf("error creating validator: %w", err)
	}

	productRepository := repository.NewProductRepository(dbClient)
	containerRepository := repository.NewContainerRepository(dbClient)

	productService := service.NewProductService(dbClient, productRepository)
	containerService := service.NewContainerService(dbClient, containerRepository, productRepository)
	codeService := service.NewCodeService(logger, containerRepository, qr.NewRenderer())

	interruptChan := cmdutil.InterruptChan()
	var wg sync.WaitGroup

	wg.Go(func() {
		svc := http.New(cfg.HTTP, logger, validate, productService, containerService, codeService, dbClient)
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
