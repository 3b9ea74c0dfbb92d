package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pantrystack/pantry-tracker/internal/apperr"
	"github.com/pantrystack/pantry-tracker/internal/model"
	"github.com/pantrystack/pantry-tracker/internal/storage/db"
)

type UpdateContainerParams struct {
	ProductID *int64
	Quantity  *int
	Opened    *bool
	Remaining *float64
}

type ContainerRepository interface {
	WithDB(db db.DB) ContainerRepository
	CreateContainer(ctx context.Context, container model.Container) (model.Container, error)
	GetContainerByID(ctx context.Context, id int64) (model.Container, error)
	ListAllContainers(ctx context.Context) ([]model.Container, error)
	UpdateContainer(ctx context.Context, id int64, params UpdateContainerParams, updatedAt time.Time) (model.Container, error)
	DeleteContainer(ctx context.Context, id int64) (model.Container, error)
}

type containerRepository struct {
	db db.DB
}

func NewContainerRepository(db db.DB) ContainerRepository {
	return &containerRepository{db: db}
}

func (r containerRepository) WithDB(db db.DB) ContainerRepository {
	return &containerRepository{db: db}
}

// joinedColumns selects the container plus its product resolved read-time.
// The join is LEFT so containers whose product was deleted still list,
// with a null product.
const joinedColumns = `
	c.id, c.product_id, c.uuid, c.quantity, c.opened, c.remaining, c.created_at, c.updated_at,
	p.id, p.name, p.upc, p.uuid, p.nutrition, p.created_at, p.updated_at`

func (r containerRepository) CreateContainer(ctx context.Context, container model.Container) (model.Container, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO containers (product_id, uuid, quantity, opened, remaining, created_at, updated_at)
		VALUES (@product_id, @uuid, @quantity, @opened, @remaining, @created_at, @updated_at)
		RETURNING id;
	`, pgx.NamedArgs{
		"product_id": container.ProductID,
		"uuid":       container.UUID,
		"quantity":   container.Quantity,
		"opened":     container.Opened,
		"remaining":  container.Remaining,
		"created_at": container.CreatedAt,
		"updated_at": container.UpdatedAt,
	})

	if err := row.Scan(&container.ID); err != nil {
		return model.Container{}, fmt.Errorf("create container: %w", translateConstraintError(err))
	}

	return container, nil
}

func (r containerRepository) GetContainerByID(ctx context.Context, id int64) (model.Container, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+joinedColumns+`
		FROM containers c
		LEFT JOIN products p ON p.id = c.product_id
		WHERE c.id = $1;
	`, id)

	container, err := scanContainerWithProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Container{}, apperr.ContainerNotFoundErr.WrapParent(err)
		}
		return model.Container{}, fmt.Errorf("get container by id: %w", err)
	}

	return container, nil
}

func (r containerRepository) ListAllContainers(ctx context.Context) ([]model.Container, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+joinedColumns+`
		FROM containers c
		LEFT JOIN products p ON p.id = c.product_id
		ORDER BY c.id;
	`)
	if err != nil {
		return nil, fmt.Errorf("list all containers: %w", err)
	}
	defer rows.Close()

	containers := make([]model.Container, 0)
	for rows.Next() {
		container, err := scanContainerWithProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan container: %w", err)
		}
		containers = append(containers, container)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate containers: %w", err)
	}

	return containers, nil
}

func (r containerRepository) UpdateContainer(ctx context.Context, id int64, params UpdateContainerParams, updatedAt time.Time) (model.Container, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE containers
		SET
			product_id = COALESCE(@product_id, product_id),
			quantity   = COALESCE(@quantity, quantity),
			opened     = COALESCE(@opened, opened),
			remaining  = COALESCE(@remaining, remaining),
			updated_at = @updated_at
		WHERE id = @id
		RETURNING id;
	`, pgx.NamedArgs{
		"id":         id,
		"product_id": params.ProductID,
		"quantity":   params.Quantity,
		"opened":     params.Opened,
		"remaining":  params.Remaining,
		"updated_at": updatedAt,
	})

	var updatedID int64
	if err := row.Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Container{}, apperr.ContainerNotFoundErr.WrapParent(err)
		}
		return model.Container{}, fmt.Errorf("update container: %w", err)
	}

	return r.GetContainerByID(ctx, updatedID)
}

func (r containerRepository) DeleteContainer(ctx context.Context, id int64) (model.Container, error) {
	row := r.db.QueryRow(ctx, `
		DELETE FROM containers
		WHERE id = $1
		RETURNING id, product_id, uuid, quantity, opened, remaining, created_at, updated_at;
	`, id)

	var container model.Container
	if err := row.Scan(
		&container.ID,
		&container.ProductID,
		&container.UUID,
		&container.Quantity,
		&container.Opened,
		&container.Remaining,
		&container.CreatedAt,
		&container.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Container{}, apperr.ContainerNotFoundErr.WrapParent(err)
		}
		return model.Container{}, fmt.Errorf("delete container: %w", err)
	}

	return container, nil
}

func scanContainerWithProduct(row pgx.Row) (model.Container, error) {
	var (
		container model.Container

		productID        *int64
		productName      *string
		productUPC       *string
		productUUID      *uuid.UUID
		productNutrition *model.Nutrition
		productCreatedAt *time.Time
		productUpdatedAt *time.Time
	)

	if err := row.Scan(
		&container.ID,
		&container.ProductID,
		&container.UUID,
		&container.Quantity,
		&container.Opened,
		&container.Remaining,
		&container.CreatedAt,
		&container.UpdatedAt,
		&productID,
		&productName,
		&productUPC,
		&productUUID,
		&productNutrition,
		&productCreatedAt,
		&productUpdatedAt,
	); err != nil {
		return model.Container{}, err
	}

	if productID != nil {
		container.Product = &model.Product{
			ID:        *productID,
			Name:      *productName,
			UPC:       *productUPC,
			UUID:      *productUUID,
			Nutrition: productNutrition,
			CreatedAt: *productCreatedAt,
			UpdatedAt: *productUpdatedAt,
		}
	}

	return container, nil
}
