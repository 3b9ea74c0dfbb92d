package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrystack/pantry-tracker/internal/apperr"
	"github.com/pantrystack/pantry-tracker/internal/model"
	"github.com/pantrystack/pantry-tracker/pkg/ptr"
)

func newProductService(t *testing.T) (ProductService, *fakeProductRepo) {
	t.Helper()
	repo := newFakeProductRepo()
	return NewProductService(&fakeDB{}, repo), repo
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Should mint a fresh identifier", func(t *testing.T) {
		svc, _ := newProductService(t)

		product, err := svc.CreateProduct(ctx, CreateProductParams{
			Name: "Tomato Sauce",
			UPC:  "012345678905",
			Nutrition: &model.Nutrition{
				Calories: 80,
				Fat:      1,
				Protein:  2,
				Carbs:    15,
			},
		})
		require.NoError(t, err)

		assert.NotEqual(t, uuid.UUID{}, product.UUID)
		assert.Equal(t, "Tomato Sauce", product.Name)
		assert.Equal(t, "012345678905", product.UPC)
		require.NotNil(t, product.Nutrition)
		assert.Equal(t, float64(80), product.Nutrition.Calories)
		assert.False(t, product.CreatedAt.IsZero())
	})

	t.Run("Should never mint the same identifier twice", func(t *testing.T) {
		svc, _ := newProductService(t)

		seen := map[uuid.UUID]struct{}{}
		for i := 0; i < 100; i++ {
			product, err := svc.CreateProduct(ctx, CreateProductParams{
				Name: "Soup",
				UPC:  "0123456789" + string(rune('0'+i/10)) + string(rune('0'+i%10)),
			})
			require.NoError(t, err)

			_, dup := seen[product.UUID]
			require.False(t, dup, "identifier minted twice: %s", product.UUID)
			seen[product.UUID] = struct{}{}
		}
	})

	t.Run("Should fail on duplicate upc and leave the original untouched", func(t *testing.T) {
		svc, repo := newProductService(t)

		original, err := svc.CreateProduct(ctx, CreateProductParams{Name: "Beans", UPC: "012345678905"})
		require.NoError(t, err)

		_, err = svc.CreateProduct(ctx, CreateProductParams{Name: "Other Beans", UPC: "012345678905"})
		require.ErrorIs(t, err, apperr.DuplicateUPCErr)

		stored := repo.products[original.ID]
		assert.Equal(t, "Beans", stored.Name)
		assert.Equal(t, original.UUID, stored.UUID)
		assert.Len(t, repo.products, 1)
	})
}

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Should merge only the provided fields", func(t *testing.T) {
		svc, _ := newProductService(t)

		created, err := svc.CreateProduct(ctx, CreateProductParams{
			Name:      "Beans",
			UPC:       "012345678905",
			Nutrition: &model.Nutrition{Calories: 120},
		})
		require.NoError(t, err)

		updated, err := svc.UpdateProduct(ctx, created.ID, UpdateProductParams{
			Name: ptr.New("Black Beans"),
		})
		require.NoError(t, err)

		assert.Equal(t, "Black Beans", updated.Name)
		assert.Equal(t, created.UPC, updated.UPC)
		assert.Equal(t, created.UUID, updated.UUID)
		require.NotNil(t, updated.Nutrition)
		assert.Equal(t, float64(120), updated.Nutrition.Calories)
	})

	t.Run("Should re-check upc uniqueness when upc changes", func(t *testing.T) {
		svc, _ := newProductService(t)

		_, err := svc.CreateProduct(ctx, CreateProductParams{Name: "A", UPC: "012345678905"})
		require.NoError(t, err)
		other, err := svc.CreateProduct(ctx, CreateProductParams{Name: "B", UPC: "036000291452"})
		require.NoError(t, err)

		_, err = svc.UpdateProduct(ctx, other.ID, UpdateProductParams{UPC: ptr.New("012345678905")})
		assert.ErrorIs(t, err, apperr.DuplicateUPCErr)
	})

	t.Run("Should report not found for an unknown id", func(t *testing.T) {
		svc, _ := newProductService(t)

		_, err := svc.UpdateProduct(ctx, 42, UpdateProductParams{Name: ptr.New("X")})
		assert.ErrorIs(t, err, apperr.ProductNotFoundErr)
	})
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return the deleted record", func(t *testing.T) {
		svc, repo := newProductService(t)

		created, err := svc.CreateProduct(ctx, CreateProductParams{Name: "Beans", UPC: "012345678905"})
		require.NoError(t, err)

		deleted, err := svc.DeleteProduct(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, deleted.ID)
		assert.Empty(t, repo.products)
	})

	t.Run("Should report not found for an unknown id", func(t *testing.T) {
		svc, _ := newProductService(t)

		_, err := svc.DeleteProduct(ctx, 42)
		assert.ErrorIs(t, err, apperr.ProductNotFoundErr)
	})
}

func TestListProducts(t *testing.T) {
	ctx := context.Background()
	svc, _ := newProductService(t)

	_, err := svc.CreateProduct(ctx, CreateProductParams{Name: "A", UPC: "012345678905"})
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, CreateProductParams{Name: "B", UPC: "036000291452"})
	require.NoError(t, err)

	products, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}
