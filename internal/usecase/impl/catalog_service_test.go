package impl

import (
	"context"
	"testing"

	"vendo/internal/domain/entity"
	domainerrors "vendo/internal/domain/errors"
	"vendo/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service  usecase.CatalogUsecase
	accounts *fakeAccountRepo
	products *fakeProductRepo
}

func createTestCatalogService(t *testing.T) *catalogServiceFixtures {
	t.Helper()

	accounts := newFakeAccountRepo()
	products := newFakeProductRepo()
	factory := &fakeRepoFactory{
		accountRepo: accounts,
		productRepo: products,
	}

	service := NewCatalogService(CatalogServiceParams{
		TxManager:   &fakeTxManager{factory: factory},
		AccountRepo: accounts,
		ProductRepo: products,
		Logger:      newDiscardLogger(),
	})

	return &catalogServiceFixtures{
		service:  service,
		accounts: accounts,
		products: products,
	}
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	fixtures := createTestCatalogService(t)
	vendor := seedVendorWithStore(t, fixtures.accounts, "vendor@example.com", "Shop")

	product, err := fixtures.service.CreateProduct(context.Background(), vendor.ID, &usecase.CreateProductInput{
		Title:             "Mug",
		Description:       "Ceramic mug",
		Price:             12.5,
		QuantityAvailable: 30,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, vendor.ID, product.VendorID)

	stored, err := fixtures.products.FindByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mug", stored.Title)
}

func TestCatalogService_CreateProduct_RequiresStore(t *testing.T) {
	fixtures := createTestCatalogService(t)
	vendor := seedAccount(t, fixtures.accounts, entity.RoleVendor, "vendor@example.com")

	product, err := fixtures.service.CreateProduct(context.Background(), vendor.ID, &usecase.CreateProductInput{
		Title: "Mug",
		Price: 12.5,
	})

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrVendorProfileMissing)
}

func TestCatalogService_CreateProduct_NegativePrice(t *testing.T) {
	fixtures := createTestCatalogService(t)
	vendor := seedVendorWithStore(t, fixtures.accounts, "vendor@example.com", "Shop")

	product, err := fixtures.service.CreateProduct(context.Background(), vendor.ID, &usecase.CreateProductInput{
		Title: "Mug",
		Price: -1,
	})

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fixtures := createTestCatalogService(t)

	product, err := fixtures.service.GetProduct(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_ListProducts_ExcludesDeleted(t *testing.T) {
	fixtures := createTestCatalogService(t)
	vendor := seedVendorWithStore(t, fixtures.accounts, "vendor@example.com", "Shop")

	kept, err := fixtures.service.CreateProduct(context.Background(), vendor.ID, &usecase.CreateProductInput{Title: "Kept", Price: 1})
	require.NoError(t, err)
	removed, err := fixtures.service.CreateProduct(context.Background(), vendor.ID, &usecase.CreateProductInput{Title: "Removed", Price: 2})
	require.NoError(t, err)
	require.NoError(t, fixtures.service.DeleteProduct(context.Background(), vendor.ID, removed.ID))

	products, err := fixtures.service.ListProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, kept.ID, products[0].ID)
}

func TestCatalogService_UpdateProduct_PartialFields(t *testing.T) {
	fixtures := createTestCatalogService(t)
	vendor := seedVendorWithStore(t, fixtures.accounts, "vendor@example.com", "Shop")
	product, err := fixtures.service.CreateProduct(context.Background(), vendor.ID, &usecase.CreateProductInput{
		Title:             "Mug",
		Description:       "Ceramic mug",
		Price:             12.5,
		QuantityAvailable: 30,
	})
	require.NoError(t, err)

	// Only the price changes; zero-valued fields keep their stored values.
	updated, err := fixtures.service.UpdateProduct(context.Background(), vendor.ID, product.ID, &usecase.UpdateProductInput{
		Price: 9.9,
	})

	require.NoError(t, err)
	assert.Equal(t, "Mug", updated.Title)
	assert.Equal(t, "Ceramic mug", updated.Description)
	assert.InDelta(t, 9.9, updated.Price, 1e-9)
	assert.Equal(t, 30, updated.QuantityAvailable)
}

func TestCatalogService_UpdateProduct_EmptyInputNoOp(t *testing.T) {
	fixtures := createTestCatalogService(t)
	vendor := seedVendorWithStore(t, fixtures.accounts, "vendor@example.com", "Shop")
	product, err := fixtures.service.CreateProduct(context.Background(), vendor.ID, &usecase.CreateProductInput{
		Title: "Mug",
		Price: 12.5,
	})
	require.NoError(t, err)

	updated, err := fixtures.service.UpdateProduct(context.Background(), vendor.ID, product.ID, &usecase.UpdateProductInput{})

	require.NoError(t, err)
	assert.Equal(t, "Mug", updated.Title)
	assert.InDelta(t, 12.5, updated.Price, 1e-9)
}

func TestCatalogService_UpdateProduct_NotOwner(t *testing.T) {
	fixtures := createTestCatalogService(t)
	owner := seedVendorWithStore(t, fixtures.accounts, "owner@example.com", "Shop")
	other := seedVendorWithStore(t, fixtures.accounts, "other@example.com", "Other Shop")
	product, err := fixtures.service.CreateProduct(context.Background(), owner.ID, &usecase.CreateProductInput{
		Title: "Mug",
		Price: 12.5,
	})
	require.NoError(t, err)

	updated, err := fixtures.service.UpdateProduct(context.Background(), other.ID, product.ID, &usecase.UpdateProductInput{
		Title: "Hijacked",
	})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)

	stored, err := fixtures.products.FindByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mug", stored.Title)
}

func TestCatalogService_UpdateProduct_MissingReportsNotFound(t *testing.T) {
	fixtures := createTestCatalogService(t)
	vendor := seedVendorWithStore(t, fixtures.accounts, "vendor@example.com", "Shop")

	// A missing product reports not-found, never an ownership violation.
	updated, err := fixtures.service.UpdateProduct(context.Background(), vendor.ID, uuid.New(), &usecase.UpdateProductInput{
		Title: "Anything",
	})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	assert.NotErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}

func TestCatalogService_DeleteProduct_Tombstones(t *testing.T) {
	fixtures := createTestCatalogService(t)
	vendor := seedVendorWithStore(t, fixtures.accounts, "vendor@example.com", "Shop")
	product, err := fixtures.service.CreateProduct(context.Background(), vendor.ID, &usecase.CreateProductInput{
		Title: "Mug",
		Price: 12.5,
	})
	require.NoError(t, err)

	require.NoError(t, fixtures.service.DeleteProduct(context.Background(), vendor.ID, product.ID))

	// Gone from the live catalog.
	_, err = fixtures.service.GetProduct(context.Background(), product.ID)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	// Still resolvable for historical order references.
	tombstoned, err := fixtures.products.FindByIDIncludingDeleted(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mug", tombstoned.Title)
}

func TestCatalogService_DeleteProduct_NotOwner(t *testing.T) {
	fixtures := createTestCatalogService(t)
	owner := seedVendorWithStore(t, fixtures.accounts, "owner@example.com", "Shop")
	other := seedVendorWithStore(t, fixtures.accounts, "other@example.com", "Other Shop")
	product, err := fixtures.service.CreateProduct(context.Background(), owner.ID, &usecase.CreateProductInput{
		Title: "Mug",
		Price: 12.5,
	})
	require.NoError(t, err)

	err = fixtures.service.DeleteProduct(context.Background(), other.ID, product.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)

	_, err = fixtures.service.GetProduct(context.Background(), product.ID)
	assert.NoError(t, err)
}
