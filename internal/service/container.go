package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pantrystack/pantry-tracker/internal/apperr"
	"github.com/pantrystack/pantry-tracker/internal/model"
	"github.com/pantrystack/pantry-tracker/internal/repository"
	"github.com/pantrystack/pantry-tracker/internal/storage/db"
)

type CreateContainerParams struct {
	ProductID int64
	Quantity  int
	Opened    *bool
	Remaining *float64
}

type UpdateContainerParams struct {
	ProductID *int64
	Quantity  *int
	Opened    *bool
	Remaining *float64
}

// ContainerService manages the container ledger. Creation validates the
// product reference and mints the container's scannable identifier inside
// a single transaction, so a failed validation never leaves a partial record.
type ContainerService interface {
	CreateContainer(ctx context.Context, params CreateContainerParams) (model.Container, error)
	GetContainer(ctx context.Context, id int64) (model.Container, error)
	ListContainers(ctx context.Context) ([]model.Container, error)
	UpdateContainer(ctx context.Context, id int64, params UpdateContainerParams) (model.Container, error)
	DeleteContainer(ctx context.Context, id int64) (model.Container, error)
}

type containerService struct {
	db            db.DB
	containerRepo repository.ContainerRepository
	productRepo   repository.ProductRepository
}

func NewContainerService(
	db db.DB,
	containerRepo repository.ContainerRepository,
	productRepo repository.ProductRepository,
) ContainerService {
	return &containerService{
		db:            db,
		containerRepo: containerRepo,
		productRepo:   productRepo,
	}
}

func (s *containerService) CreateContainer(ctx context.Context, params CreateContainerParams) (model.Container, error) {
	if params.Remaining != nil && *params.Remaining > float64(params.Quantity) {
		return model.Container{}, apperr.RemainingExceedsQuantityErr
	}

	id, err := mintIdentifier()
	if err != nil {
		return model.Container{}, err
	}

	now := time.Now()
	container := model.Container{
		ProductID: params.ProductID,
		UUID:      id,
		Quantity:  params.Quantity,
		Opened:    false,
		Remaining: params.Remaining,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if params.Opened != nil {
		container.Opened = *params.Opened
	}

	if err := s.db.WithTx(ctx, func(db db.DB) error {
		exists, err := s.productRepo.
			WithDB(db).
			ProductExists(ctx, params.ProductID)
		if err != nil {
			return fmt.Errorf("product repository product exists: %w", err)
		}
		if !exists {
			return apperr.ProductRefNotFoundErr
		}

		created, err := s.containerRepo.
			WithDB(db).
			CreateContainer(ctx, container)
		if err != nil {
			return fmt.Errorf("container repository create container: %w", err)
		}
		container = created

		return nil
	}); err != nil {
		return model.Container{}, err
	}

	// re-read outside the tx so the response carries the resolved product
	return s.GetContainer(ctx, container.ID)
}

func (s *containerService) GetContainer(ctx context.Context, id int64) (model.Container, error) {
	container, err := s.containerRepo.GetContainerByID(ctx, id)
	if err != nil {
		return model.Container{}, fmt.Errorf("container repository get container by id: %w", err)
	}

	return container, nil
}

func (s *containerService) ListContainers(ctx context.Context) ([]model.Container, error) {
	containers, err := s.containerRepo.ListAllContainers(ctx)
	if err != nil {
		return nil, fmt.Errorf("container repository list all containers: %w", err)
	}

	return containers, nil
}

func (s *containerService) UpdateContainer(ctx context.Context, id int64, params UpdateContainerParams) (model.Container, error) {
	var updated model.Container

	if err := s.db.WithTx(ctx, func(db db.DB) error {
		containerRepo := s.containerRepo.WithDB(db)

		current, err := containerRepo.GetContainerByID(ctx, id)
		if err != nil {
			return fmt.Errorf("container repository get container by id: %w", err)
		}

		if params.ProductID != nil && *params.ProductID != current.ProductID {
			exists, err := s.productRepo.
				WithDB(db).
				ProductExists(ctx, *params.ProductID)
			if err != nil {
				return fmt.Errorf("product repository product exists: %w", err)
			}
			if !exists {
				return apperr.ProductRefNotFoundErr
			}
		}

		// validate remaining against the merged record, not just the patch
		quantity := current.Quantity
		if params.Quantity != nil {
			quantity = *params.Quantity
		}
		remaining := current.Remaining
		if params.Remaining != nil {
			remaining = params.Remaining
		}
		if remaining != nil && *remaining > float64(quantity) {
			return apperr.RemainingExceedsQuantityErr
		}

		updated, err = containerRepo.UpdateContainer(ctx, id, repository.UpdateContainerParams{
			ProductID: params.ProductID,
			Quantity:  params.Quantity,
			Opened:    params.Opened,
			Remaining: params.Remaining,
		}, time.Now())
		if err != nil {
			return fmt.Errorf("container repository update container: %w", err)
		}

		return nil
	}); err != nil {
		return model.Container{}, err
	}

	return updated, nil
}

func (s *containerService) DeleteContainer(ctx context.Context, id int64) (model.Container, error) {
	container, err := s.containerRepo.DeleteContainer(ctx, id)
	if err != nil {
		return model.Container{}, fmt.Errorf("container repository delete container: %w", err)
	}

	return container, nil
}
