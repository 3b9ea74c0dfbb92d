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

func newContainerService(t *testing.T) (ContainerService, ProductService, *fakeContainerRepo) {
	t.Helper()
	productRepo := newFakeProductRepo()
	containerRepo := newFakeContainerRepo(productRepo)
	db := &fakeDB{}
	return NewContainerService(db, containerRepo, productRepo),
		NewProductService(db, productRepo),
		containerRepo
}

func createTestProduct(t *testing.T, svc ProductService) model.Product {
	t.Helper()
	product, err := svc.CreateProduct(context.Background(), CreateProductParams{
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
	return product
}

func TestCreateContainer(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create with a fresh identifier and resolved product", func(t *testing.T) {
		containerSvc, productSvc, _ := newContainerService(t)
		product := createTestProduct(t, productSvc)

		container, err := containerSvc.CreateContainer(ctx, CreateContainerParams{
			ProductID: product.ID,
			Quantity:  2,
			Remaining: ptr.New(2.0),
		})
		require.NoError(t, err)

		assert.NotEqual(t, uuid.UUID{}, container.UUID)
		assert.NotEqual(t, product.UUID, container.UUID)
		assert.Equal(t, 2, container.Quantity)
		assert.False(t, container.Opened)
		require.NotNil(t, container.Remaining)
		assert.Equal(t, 2.0, *container.Remaining)

		require.NotNil(t, container.Product)
		assert.Equal(t, product.ID, container.Product.ID)
		require.NotNil(t, container.Product.Nutrition)
		assert.Equal(t, float64(80), container.Product.Nutrition.Calories)
		assert.Equal(t, float64(15), container.Product.Nutrition.Carbs)
	})

	t.Run("Should fail when the product reference does not resolve", func(t *testing.T) {
		containerSvc, _, repo := newContainerService(t)

		_, err := containerSvc.CreateContainer(ctx, CreateContainerParams{
			ProductID: 42,
			Quantity:  1,
		})
		require.ErrorIs(t, err, apperr.ProductRefNotFoundErr)
		assert.Empty(t, repo.containers, "no partial record may survive a failed creation")
	})

	t.Run("Should reject remaining greater than quantity", func(t *testing.T) {
		containerSvc, productSvc, repo := newContainerService(t)
		product := createTestProduct(t, productSvc)

		_, err := containerSvc.CreateContainer(ctx, CreateContainerParams{
			ProductID: product.ID,
			Quantity:  2,
			Remaining: ptr.New(3.0),
		})
		require.ErrorIs(t, err, apperr.RemainingExceedsQuantityErr)
		assert.Empty(t, repo.containers)
	})

	t.Run("Should never mint the same identifier twice", func(t *testing.T) {
		containerSvc, productSvc, _ := newContainerService(t)
		product := createTestProduct(t, productSvc)

		seen := map[uuid.UUID]struct{}{}
		for i := 0; i < 100; i++ {
			container, err := containerSvc.CreateContainer(ctx, CreateContainerParams{
				ProductID: product.ID,
				Quantity:  1,
			})
			require.NoError(t, err)

			_, dup := seen[container.UUID]
			require.False(t, dup, "identifier minted twice: %s", container.UUID)
			seen[container.UUID] = struct{}{}
		}
	})
}

func TestUpdateContainer(t *testing.T) {
	ctx := context.Background()

	t.Run("Should leave unspecified fields unchanged", func(t *testing.T) {
		containerSvc, productSvc, _ := newContainerService(t)
		product := createTestProduct(t, productSvc)

		created, err := containerSvc.CreateContainer(ctx, CreateContainerParams{
			ProductID: product.ID,
			Quantity:  2,
			Remaining: ptr.New(2.0),
		})
		require.NoError(t, err)

		updated, err := containerSvc.UpdateContainer(ctx, created.ID, UpdateContainerParams{
			Opened: ptr.New(true),
		})
		require.NoError(t, err)

		assert.True(t, updated.Opened)
		assert.Equal(t, created.Quantity, updated.Quantity)
		assert.Equal(t, created.ProductID, updated.ProductID)
		assert.Equal(t, created.UUID, updated.UUID)
		require.NotNil(t, updated.Remaining)
		assert.Equal(t, 2.0, *updated.Remaining)
	})

	t.Run("Should re-validate a changed product reference", func(t *testing.T) {
		containerSvc, productSvc, _ := newContainerService(t)
		product := createTestProduct(t, productSvc)

		created, err := containerSvc.CreateContainer(ctx, CreateContainerParams{
			ProductID: product.ID,
			Quantity:  1,
		})
		require.NoError(t, err)

		_, err = containerSvc.UpdateContainer(ctx, created.ID, UpdateContainerParams{
			ProductID: ptr.New(int64(99)),
		})
		assert.ErrorIs(t, err, apperr.ProductRefNotFoundErr)
	})

	t.Run("Should validate remaining against the merged record", func(t *testing.T) {
		containerSvc, productSvc, _ := newContainerService(t)
		product := createTestProduct(t, productSvc)

		created, err := containerSvc.CreateContainer(ctx, CreateContainerParams{
			ProductID: product.ID,
			Quantity:  2,
			Remaining: ptr.New(2.0),
		})
		require.NoError(t, err)

		// shrinking quantity below the stored remaining must fail
		_, err = containerSvc.UpdateContainer(ctx, created.ID, UpdateContainerParams{
			Quantity: ptr.New(1),
		})
		assert.ErrorIs(t, err, apperr.RemainingExceedsQuantityErr)
	})

	t.Run("Should report not found for an unknown id", func(t *testing.T) {
		containerSvc, _, _ := newContainerService(t)

		_, err := containerSvc.UpdateContainer(ctx, 42, UpdateContainerParams{Opened: ptr.New(true)})
		assert.ErrorIs(t, err, apperr.ContainerNotFoundErr)
	})
}

func TestDeleteContainer(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return the deleted record", func(t *testing.T) {
		containerSvc, productSvc, repo := newContainerService(t)
		product := createTestProduct(t, productSvc)

		created, err := containerSvc.CreateContainer(ctx, CreateContainerParams{
			ProductID: product.ID,
			Quantity:  1,
		})
		require.NoError(t, err)

		deleted, err := containerSvc.DeleteContainer(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, deleted.ID)
		assert.Empty(t, repo.containers)
	})

	t.Run("Should report not found for an unknown id", func(t *testing.T) {
		containerSvc, _, _ := newContainerService(t)

		_, err := containerSvc.DeleteContainer(ctx, 42)
		assert.ErrorIs(t, err, apperr.ContainerNotFoundErr)
	})
}

func TestListContainers(t *testing.T) {
	ctx := context.Background()
	containerSvc, productSvc, _ := newContainerService(t)
	product := createTestProduct(t, productSvc)

	for i := 0; i < 3; i++ {
		_, err := containerSvc.CreateContainer(ctx, CreateContainerParams{
			ProductID: product.ID,
			Quantity:  1,
		})
		require.NoError(t, err)
	}

	containers, err := containerSvc.ListContainers(ctx)
	require.NoError(t, err)
	require.Len(t, containers, 3)
	for _, container := range containers {
		require.NotNil(t, container.Product)
		assert.Equal(t, product.ID, container.Product.ID)
	}
}
