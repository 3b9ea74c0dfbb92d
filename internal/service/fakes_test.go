package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pantrystack/pantry-tracker/internal/apperr"
	"github.com/pantrystack/pantry-tracker/internal/model"
	"github.com/pantrystack/pantry-tracker/internal/repository"
	"github.com/pantrystack/pantry-tracker/internal/storage/db"
)

// fakeDB satisfies db.DB for service tests. The fakes below never touch
// SQL, so only WithTx matters: it runs the function against the same fake.
type fakeDB struct{}

func (f *fakeDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (f *fakeDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, nil
}

func (f *fakeDB) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}

func (f *fakeDB) WithTx(_ context.Context, txFunc func(db.DB) error) error {
	return txFunc(f)
}

type fakeProductRepo struct {
	nextID   int64
	products map[int64]model.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[int64]model.Product{}}
}

func (f *fakeProductRepo) WithDB(db.DB) repository.ProductRepository { return f }

func (f *fakeProductRepo) CreateProduct(_ context.Context, product model.Product) (model.Product, error) {
	for _, existing := range f.products {
		if existing.UPC == product.UPC {
			return model.Product{}, apperr.DuplicateUPCErr
		}
		if existing.UUID == product.UUID {
			return model.Product{}, apperr.DuplicateIdentifierErr
		}
	}

	f.nextID++
	product.ID = f.nextID
	f.products[product.ID] = product
	return product, nil
}

func (f *fakeProductRepo) GetProductByID(_ context.Context, id int64) (model.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return model.Product{}, apperr.ProductNotFoundErr
	}
	return product, nil
}

func (f *fakeProductRepo) ListAllProducts(context.Context) ([]model.Product, error) {
	products := make([]model.Product, 0, len(f.products))
	for id := int64(1); id <= f.nextID; id++ {
		if product, ok := f.products[id]; ok {
			products = append(products, product)
		}
	}
	return products, nil
}

func (f *fakeProductRepo) ProductExists(_ context.Context, id int64) (bool, error) {
	_, ok := f.products[id]
	return ok, nil
}

func (f *fakeProductRepo) UpdateProduct(_ context.Context, id int64, params repository.UpdateProductParams, updatedAt time.Time) (model.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return model.Product{}, apperr.ProductNotFoundErr
	}

	if params.Name != nil {
		product.Name = *params.Name
	}
	if params.UPC != nil {
		for otherID, other := range f.products {
			if otherID != id && other.UPC == *params.UPC {
				return model.Product{}, apperr.DuplicateUPCErr
			}
		}
		product.UPC = *params.UPC
	}
	if params.Nutrition != nil {
		product.Nutrition = params.Nutrition
	}
	product.UpdatedAt = updatedAt

	f.products[id] = product
	return product, nil
}

func (f *fakeProductRepo) DeleteProduct(_ context.Context, id int64) (model.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return model.Product{}, apperr.ProductNotFoundErr
	}
	delete(f.products, id)
	return product, nil
}

type fakeContainerRepo struct {
	nextID     int64
	containers map[int64]model.Container
	products   *fakeProductRepo
}

func newFakeContainerRepo(products *fakeProductRepo) *fakeContainerRepo {
	return &fakeContainerRepo{
		containers: map[int64]model.Container{},
		products:   products,
	}
}

func (f *fakeContainerRepo) WithDB(db.DB) repository.ContainerRepository { return f }

func (f *fakeContainerRepo) CreateContainer(_ context.Context, container model.Container) (model.Container, error) {
	for _, existing := range f.containers {
		if existing.UUID == container.UUID {
			return model.Container{}, apperr.DuplicateIdentifierErr
		}
	}

	f.nextID++
	container.ID = f.nextID
	f.containers[container.ID] = container
	return container, nil
}

func (f *fakeContainerRepo) GetContainerByID(_ context.Context, id int64) (model.Container, error) {
	container, ok := f.containers[id]
	if !ok {
		return model.Container{}, apperr.ContainerNotFoundErr
	}
	return f.resolve(container), nil
}

func (f *fakeContainerRepo) ListAllContainers(context.Context) ([]model.Container, error) {
	containers := make([]model.Container, 0, len(f.containers))
	for id := int64(1); id <= f.nextID; id++ {
		if container, ok := f.containers[id]; ok {
			containers = append(containers, f.resolve(container))
		}
	}
	return containers, nil
}

func (f *fakeContainerRepo) UpdateContainer(_ context.Context, id int64, params repository.UpdateContainerParams, updatedAt time.Time) (model.Container, error) {
	container, ok := f.containers[id]
	if !ok {
		return model.Container{}, apperr.ContainerNotFoundErr
	}

	if params.ProductID != nil {
		container.ProductID = *params.ProductID
	}
	if params.Quantity != nil {
		container.Quantity = *params.Quantity
	}
	if params.Opened != nil {
		container.Opened = *params.Opened
	}
	if params.Remaining != nil {
		container.Remaining = params.Remaining
	}
	container.UpdatedAt = updatedAt

	f.containers[id] = container
	return f.resolve(container), nil
}

func (f *fakeContainerRepo) DeleteContainer(_ context.Context, id int64) (model.Container, error) {
	container, ok := f.containers[id]
	if !ok {
		return model.Container{}, apperr.ContainerNotFoundErr
	}
	delete(f.containers, id)
	return container, nil
}

// resolve emulates the repository's read-time join.
func (f *fakeContainerRepo) resolve(container model.Container) model.Container {
	if product, ok := f.products.products[container.ProductID]; ok {
		container.Product = &product
	}
	return container
}
