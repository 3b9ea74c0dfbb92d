package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pantrystack/pantry-tracker/internal/config"
	"github.com/pantrystack/pantry-tracker/internal/log"
	"github.com/pantrystack/pantry-tracker/internal/model"
	"github.com/pantrystack/pantry-tracker/internal/repository"
	"github.com/pantrystack/pantry-tracker/internal/service"
	"github.com/pantrystack/pantry-tracker/internal/storage/db"
	"github.com/pantrystack/pantry-tracker/pkg/ptr"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running seed application: %v\n", err)
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

	productRepository := repository.NewProductRepository(dbClient)
	containerRepository := repository.NewContainerRepository(dbClient)

	productService := service.NewProductService(dbClient, productRepository)
	containerService := service.NewContainerService(dbClient, containerRepository, productRepository)

	product, err := productService.CreateProduct(ctx, service.CreateProductParams{
		Name: "Tomato Sauce",
		UPC:  "012345678905",
		Nutrition: &model.Nutrition{
			Calories: 80,
			Fat:      1,
			Protein:  2,
			Carbs:    15,
		},
	})
	if err != nil {
		return fmt.Errorf("error creating seed product: %w", err)
	}

	container, err := containerService.CreateContainer(ctx, service.CreateContainerParams{
		ProductID: product.ID,
		Quantity:  2,
		Opened:    ptr.New(false),
		Remaining: ptr.New(2.0),
	})
	if err != nil {
		return fmt.Errorf("error creating seed container: %w", err)
	}

	logger.InfoContext(ctx, "seed data inserted",
		slog.Int64("product_id", product.ID),
		slog.String("product_uuid", product.UUID.String()),
		slog.Int64("container_id", container.ID),
		slog.String("container_uuid", container.UUID.String()),
	)

	return nil
}
