package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pantrystack/pantry-tracker/internal/apperr"
	"github.com/pantrystack/pantry-tracker/internal/model"
	"github.com/pantrystack/pantry-tracker/internal/storage/db"
)

type UpdateProductParams struct {
	Name      *string
	UPC       *string
	Nutrition *model.Nutrition
}

type ProductRepository interface {
	WithDB(db db.DB) ProductRepository
	CreateProduct(ctx context.Context, product model.Product) (model.Product, error)
	GetProductByID(ctx context.Context, id int64) (model.Product, error)
	ListAllProducts(ctx context.Context) ([]model.Product, error)
	ProductExists(ctx context.Context, id int64) (bool, error)
	UpdateProduct(ctx context.Context, id int64, params UpdateProductParams, updatedAt time.Time) (model.Product, error)
	DeleteProduct(ctx context.Context, id int64) (model.Product, error)
}

type productRepository struct {
	db db.DB
}

func NewProductRepository(db db.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r productRepository) WithDB(db db.DB) ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, name, upc, uuid, nutrition, created_at, updated_at`

func (r productRepository) CreateProduct(ctx context.Context, product model.Product) (model.Product, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO products (name, upc, uuid, nutrition, created_at, updated_at)
		VALUES (@name, @upc, @uuid, @nutrition, @created_at, @updated_at)
		RETURNING `+productColumns+`;
	`, pgx.NamedArgs{
		"name":       product.Name,
		"upc":        product.UPC,
		"uuid":       product.UUID,
		"nutrition":  product.Nutrition,
		"created_at": product.CreatedAt,
		"updated_at": product.UpdatedAt,
	})

	created, err := scanProduct(row)
	if err != nil {
		return model.Product{}, fmt.Errorf("create product: %w", translateConstraintError(err))
	}

	return created, nil
}

func (r productRepository) GetProductByID(ctx context.Context, id int64) (model.Product, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE id = $1;
	`, id)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, apperr.ProductNotFoundErr.WrapParent(err)
		}
		return model.Product{}, fmt.Errorf("get product by id: %w", err)
	}

	return product, nil
}

func (r productRepository) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		ORDER BY id;
	`)
	if err != nil {
		return nil, fmt.Errorf("list all products: %w", err)
	}
	defer rows.Close()

	products := make([]model.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return products, nil
}

func (r productRepository) ProductExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM products WHERE id = $1);
	`, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("product exists: %w", err)
	}

	return exists, nil
}

func (r productRepository) UpdateProduct(ctx context.Context, id int64, params UpdateProductParams, updatedAt time.Time) (model.Product, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE products
		SET
			name       = COALESCE(@name, name),
			upc        = COALESCE(@upc, upc),
			nutrition  = COALESCE(@nutrition, nutrition),
			updated_at = @updated_at
		WHERE id = @id
		RETURNING `+productColumns+`;
	`, pgx.NamedArgs{
		"id":         id,
		"name":       params.Name,
		"upc":        params.UPC,
		"nutrition":  params.Nutrition,
		"updated_at": updatedAt,
	})

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, apperr.ProductNotFoundErr.WrapParent(err)
		}
		return model.Product{}, fmt.Errorf("update product: %w", translateConstraintError(err))
	}

	return product, nil
}

func (r productRepository) DeleteProduct(ctx context.Context, id int64) (model.Product, error) {
	row := r.db.QueryRow(ctx, `
		DELETE FROM products
		WHERE id = $1
		RETURNING `+productColumns+`;
	`, id)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, apperr.ProductNotFoundErr.WrapParent(err)
		}
		return model.Product{}, fmt.Errorf("delete product: %w", err)
	}

	return product, nil
}

func scanProduct(row pgx.Row) (model.Product, error) {
	var product model.Product
	if err := row.Scan(
		&product.ID,
		&product.Name,
		&product.UPC,
		&product.UUID,
		&product.Nutrition,
		&product.CreatedAt,
		&product.UpdatedAt,
	); err != nil {
		return model.Product{}, err
	}

	return product, nil
}
