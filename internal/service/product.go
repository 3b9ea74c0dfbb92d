package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pantrystack/pantry-tracker/internal/model"
	"github.com/pantrystack/pantry-tracker/internal/repository"
	"github.com/pantrystack/pantry-tracker/internal/storage/db"
)

type CreateProductParams struct {
	Name      string
	UPC       string
	Nutrition *model.Nutrition
}

type UpdateProductParams struct {
	Name      *string
	UPC       *string
	Nutrition *model.Nutrition
}

// ProductService manages the product registry. The service is the single
// minting authority: product UUIDs are generated here and never accepted
// from callers.
type ProductService interface {
	CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error)
	GetProduct(ctx context.Context, id int64) (model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	UpdateProduct(ctx context.Context, id int64, params UpdateProductParams) (model.Product, error)
	DeleteProduct(ctx context.Context, id int64) (model.Product, error)
}

type productService struct {
	db          db.DB
	productRepo repository.ProductRepository
}

func NewProductService(db db.DB, productRepo repository.ProductRepository) ProductService {
	return &productService{
		db:          db,
		productRepo: productRepo,
	}
}

func (s *productService) CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error) {
	id, err := mintIdentifier()
	if err != nil {
		return model.Product{}, err
	}

	now := time.Now()
	product := model.Product{
		Name:      params.Name,
		UPC:       params.UPC,
		UUID:      id,
		Nutrition: params.Nutrition,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.productRepo.CreateProduct(ctx, product)
	if err != nil {
		return model.Product{}, fmt.Errorf("product repository create product: %w", err)
	}

	return created, nil
}

func (s *productService) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return model.Product{}, fmt.Errorf("product repository get product by id: %w", err)
	}

	return product, nil
}

func (s *productService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.ListAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("product repository list all products: %w", err)
	}

	return products, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, params UpdateProductParams) (model.Product, error) {
	product, err := s.productRepo.UpdateProduct(ctx, id, repository.UpdateProductParams{
		Name:      params.Name,
		UPC:       params.UPC,
		Nutrition: params.Nutrition,
	}, time.Now())
	if err != nil {
		return model.Product{}, fmt.Errorf("product repository update product: %w", err)
	}

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) (model.Product, error) {
	product, err := s.productRepo.DeleteProduct(ctx, id)
	if err != nil {
		return model.Product{}, fmt.Errorf("product repository delete product: %w", err)
	}

	return product, nil
}

// mintIdentifier generates the 128-bit random identifier assigned to every
// new product and container. Uniqueness is enforced by the storage layer's
// constraint; a collision surfaces as a creation failure.
func mintIdentifier() (uuid.UUID, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("generate uuid v4: %w", err)
	}

	return id, nil
}
