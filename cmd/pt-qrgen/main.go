package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pantrystack/pantry-tracker/internal/config"
	"github.com/pantrystack/pantry-tracker/internal/log"
	"github.com/pantrystack/pantry-tracker/internal/qr"
	"github.com/pantrystack/pantry-tracker/internal/repository"
	"github.com/pantrystack/pantry-tracker/internal/service"
	"github.com/pantrystack/pantry-tracker/internal/storage/db"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running qrgen application: %v\n", err)
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
		QRGen    config.QRGen
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	pgxPool, err := db.NewPgxPool(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("error creating pgx pool: %w", err)
	}
	defer pgxPool.Close()

	dbClient := db.NewClient(pgxPool)
	containerRepository := repository.NewContainerRepository(dbClient)
	codeService := service.NewCodeService(logger, containerRepository, qr.NewRenderer())

	result, err := codeService.RenderAllContainerCodes(ctx, cfg.QRGen.OutputDir, cfg.QRGen.Overwrite)
	logger.InfoContext(ctx, "batch render finished",
		slog.Int("rendered", result.Rendered),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed),
	)
	if err != nil {
		return fmt.Errorf("error rendering container codes: %w", err)
	}

	return nil
}
