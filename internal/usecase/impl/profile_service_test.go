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

type profileServiceFixtures struct {
	service  usecase.ProfileUsecase
	accounts *fakeAccountRepo
	products *fakeProductRepo
}

func createTestProfileService(t *testing.T) *profileServiceFixtures {
	t.Helper()

	accounts := newFakeAccountRepo()
	products := newFakeProductRepo()

	service := NewProfileService(ProfileServiceParams{
		AccountRepo:   accounts,
		ProductRepo:   products,
		QRCodeService: fakeQRCodeService{},
		Logger:        newDiscardLogger(),
	})

	return &profileServiceFixtures{
		service:  service,
		accounts: accounts,
		products: products,
	}
}

// seedVendorWithStore creates a vendor account plus its store.
func seedVendorWithStore(t *testing.T, accounts *fakeAccountRepo, email, storeName string) *entity.Account {
	t.Helper()

	account := seedAccount(t, accounts, entity.RoleVendor, email)
	require.NoError(t, accounts.CreateVendorProfile(context.Background(), &entity.VendorProfile{
		AccountID: account.ID,
		StoreName: storeName,
	}))

	return account
}

// seedCustomerWithProfile creates a customer account plus its profile.
func seedCustomerWithProfile(t *testing.T, accounts *fakeAccountRepo, email string) *entity.Account {
	t.Helper()

	account := seedAccount(t, accounts, entity.RoleCustomer, email)
	require.NoError(t, accounts.CreateCustomerProfile(context.Background(), &entity.CustomerProfile{
		AccountID: account.ID,
		Profile:   `{"nickname":"amy"}`,
	}))

	return account
}

func TestProfileService_CreateStore_Success(t *testing.T) {
	fixtures := createTestProfileService(t)
	account := seedAccount(t, fixtures.accounts, entity.RoleVendor, "vendor@example.com")

	profile, err := fixtures.service.CreateStore(context.Background(), account.ID, &usecase.CreateStoreInput{
		StoreName:        "Amy's Shop",
		StoreLogo:        "https://cdn.example.com/logo.png",
		StoreDescription: "Handmade goods",
	})

	require.NoError(t, err)
	assert.Equal(t, account.ID, profile.AccountID)
	assert.Equal(t, "Amy's Shop", profile.StoreName)

	stored, err := fixtures.accounts.FindVendorProfile(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, "Amy's Shop", stored.StoreName)
}

func TestProfileService_CreateStore_CustomerRoleForbidden(t *testing.T) {
	fixtures := createTestProfileService(t)
	account := seedAccount(t, fixtures.accounts, entity.RoleCustomer, "customer@example.com")

	profile, err := fixtures.service.CreateStore(context.Background(), account.ID, &usecase.CreateStoreInput{
		StoreName: "Sneaky Shop",
	})

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestProfileService_CreateStore_AlreadyExists(t *testing.T) {
	fixtures := createTestProfileService(t)
	account := seedVendorWithStore(t, fixtures.accounts, "vendor@example.com", "First Shop")

	profile, err := fixtures.service.CreateStore(context.Background(), account.ID, &usecase.CreateStoreInput{
		StoreName: "Second Shop",
	})

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrVendorProfileExists)
}

func TestProfileService_CreateCustomerProfile_Success(t *testing.T) {
	fixtures := createTestProfileService(t)
	account := seedAccount(t, fixtures.accounts, entity.RoleCustomer, "customer@example.com")

	profile, err := fixtures.service.CreateCustomerProfile(context.Background(), account.ID, &usecase.CreateCustomerProfileInput{
		Profile: `{"nickname":"amy"}`,
	})

	require.NoError(t, err)
	assert.Equal(t, account.ID, profile.AccountID)
	assert.Equal(t, `{"nickname":"amy"}`, profile.Profile)
}

func TestProfileService_CreateCustomerProfile_VendorRoleForbidden(t *testing.T) {
	fixtures := createTestProfileService(t)
	account := seedAccount(t, fixtures.accounts, entity.RoleVendor, "vendor@example.com")

	profile, err := fixtures.service.CreateCustomerProfile(context.Background(), account.ID, &usecase.CreateCustomerProfileInput{
		Profile: "{}",
	})

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestProfileService_UpdateCustomerProfile_Success(t *testing.T) {
	fixtures := createTestProfileService(t)
	account := seedCustomerWithProfile(t, fixtures.accounts, "customer@example.com")

	updated, err := fixtures.service.UpdateCustomerProfile(context.Background(), account.ID, &usecase.UpdateCustomerProfileInput{
		Profile: `{"nickname":"amy-2"}`,
	})

	require.NoError(t, err)
	assert.Equal(t, `{"nickname":"amy-2"}`, updated.Profile)
}

func TestProfileService_UpdateCustomerProfile_MissingProfile(t *testing.T) {
	fixtures := createTestProfileService(t)
	account := seedAccount(t, fixtures.accounts, entity.RoleCustomer, "customer@example.com")

	updated, err := fixtures.service.UpdateCustomerProfile(context.Background(), account.ID, &usecase.UpdateCustomerProfileInput{
		Profile: "{}",
	})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerProfileMissing)
}

func TestProfileService_ListVendors_IncludesProducts(t *testing.T) {
	fixtures := createTestProfileService(t)
	vendorA := seedVendorWithStore(t, fixtures.accounts, "a@example.com", "Shop A")
	seedVendorWithStore(t, fixtures.accounts, "b@example.com", "Shop B")
	require.NoError(t, fixtures.products.Create(context.Background(), &entity.Product{
		Title:    "Mug",
		Price:    12.5,
		VendorID: vendorA.ID,
	}))

	profiles, err := fixtures.service.ListVendors(context.Background())

	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "Shop A", profiles[0].StoreName)
	require.Len(t, profiles[0].Products, 1)
	assert.Equal(t, "Mug", profiles[0].Products[0].Title)
	assert.Empty(t, profiles[1].Products)
}

func TestProfileService_FollowVendor_Idempotent(t *testing.T) {
	fixtures := createTestProfileService(t)
	vendor := seedVendorWithStore(t, fixtures.accounts, "vendor@example.com", "Shop")
	customer := seedCustomerWithProfile(t, fixtures.accounts, "customer@example.com")

	require.NoError(t, fixtures.service.FollowVendor(context.Background(), customer.ID, vendor.ID))
	require.NoError(t, fixtures.service.FollowVendor(context.Background(), customer.ID, vendor.ID))

	profile, err := fixtures.accounts.FindVendorProfile(context.Background(), vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{customer.ID}, profile.Followers)
}

func TestProfileService_FollowVendor_RequiresCustomerProfile(t *testing.T) {
	fixtures := createTestProfileService(t)
	vendor := seedVendorWithStore(t, fixtures.accounts, "vendor@example.com", "Shop")
	customer := seedAccount(t, fixtures.accounts, entity.RoleCustomer, "customer@example.com")

	err := fixtures.service.FollowVendor(context.Background(), customer.ID, vendor.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerProfileMissing)
}

func TestProfileService_FollowVendor_UnknownVendor(t *testing.T) {
	fixtures := createTestProfileService(t)
	customer := seedCustomerWithProfile(t, fixtures.accounts, "customer@example.com")

	err := fixtures.service.FollowVendor(context.Background(), customer.ID, uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrVendorNotFound)
}

func TestProfileService_UnfollowVendor_RemovesEdge(t *testing.T) {
	fixtures := createTestProfileService(t)
	vendor := seedVendorWithStore(t, fixtures.accounts, "vendor@example.com", "Shop")
	customer := seedCustomerWithProfile(t, fixtures.accounts, "customer@example.com")
	require.NoError(t, fixtures.service.FollowVendor(context.Background(), customer.ID, vendor.ID))

	require.NoError(t, fixtures.service.UnfollowVendor(context.Background(), customer.ID, vendor.ID))

	profile, err := fixtures.accounts.FindVendorProfile(context.Background(), vendor.ID)
	require.NoError(t, err)
	assert.Empty(t, profile.Followers)
}

func TestProfileService_UnfollowVendor_MissingEdgeNoOp(t *testing.T) {
	fixtures := createTestProfileService(t)
	vendor := seedVendorWithStore(t, fixtures.accounts, "vendor@example.com", "Shop")
	customer := seedCustomerWithProfile(t, fixtures.accounts, "customer@example.com")

	assert.NoError(t, fixtures.service.UnfollowVendor(context.Background(), customer.ID, vendor.ID))
}

func TestProfileService_UnfollowVendor_RequiresCustomerProfile(t *testing.T) {
	fixtures := createTestProfileService(t)
	vendor := seedVendorWithStore(t, fixtures.accounts, "vendor@example.com", "Shop")
	bare := seedAccount(t, fixtures.accounts, entity.RoleCustomer, "bare@example.com")

	err := fixtures.service.UnfollowVendor(context.Background(), bare.ID, vendor.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerProfileMissing)
}

func TestProfileService_UnfollowVendor_UnknownVendor(t *testing.T) {
	fixtures := createTestProfileService(t)
	customer := seedCustomerWithProfile(t, fixtures.accounts, "customer@example.com")

	err := fixtures.service.UnfollowVendor(context.Background(), customer.ID, uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrVendorNotFound)
}

func TestProfileService_FollowedVendors(t *testing.T) {
	fixtures := createTestProfileService(t)
	vendorA := seedVendorWithStore(t, fixtures.accounts, "a@example.com", "Shop A")
	seedVendorWithStore(t, fixtures.accounts, "b@example.com", "Shop B")
	customer := seedCustomerWithProfile(t, fixtures.accounts, "customer@example.com")
	require.NoError(t, fixtures.service.FollowVendor(context.Background(), customer.ID, vendorA.ID))

	followed, err := fixtures.service.FollowedVendors(context.Background(), customer.ID)

	require.NoError(t, err)
	require.Len(t, followed, 1)
	assert.Equal(t, "Shop A", followed[0].StoreName)
}

func TestProfileService_Followers_RequiresStore(t *testing.T) {
	fixtures := createTestProfileService(t)
	account := seedAccount(t, fixtures.accounts, entity.RoleVendor, "vendor@example.com")

	followers, err := fixtures.service.Followers(context.Background(), account.ID)

	require.Error(t, err)
	assert.Nil(t, followers)
	assert.ErrorIs(t, err, domainerrors.ErrVendorProfileMissing)
}

func TestProfileService_Followers_ResolvesAccounts(t *testing.T) {
	fixtures := createTestProfileService(t)
	vendor := seedVendorWithStore(t, fixtures.accounts, "vendor@example.com", "Shop")
	customer := seedCustomerWithProfile(t, fixtures.accounts, "customer@example.com")
	require.NoError(t, fixtures.service.FollowVendor(context.Background(), customer.ID, vendor.ID))

	followers, err := fixtures.service.Followers(context.Background(), vendor.ID)

	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, customer.Email, followers[0].Email)
}

func TestProfileService_StoreQR_Success(t *testing.T) {
	fixtures := createTestProfileService(t)
	vendor := seedVendorWithStore(t, fixtures.accounts, "vendor@example.com", "Shop")

	png, err := fixtures.service.StoreQR(context.Background(), vendor.ID)

	require.NoError(t, err)
	assert.Equal(t, pngMagic, png[:4])
}

func TestProfileService_StoreQR_RequiresStore(t *testing.T) {
	fixtures := createTestProfileService(t)
	account := seedAccount(t, fixtures.accounts, entity.RoleVendor, "vendor@example.com")

	png, err := fixtures.service.StoreQR(context.Background(), account.ID)

	require.Error(t, err)
	assert.Nil(t, png)
	assert.ErrorIs(t, err, domainerrors.ErrVendorProfileMissing)
}
