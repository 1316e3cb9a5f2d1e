package impl

import (
	"context"
	"strings"
	"testing"

	"vendo/internal/domain/entity"
	domainerrors "vendo/internal/domain/errors"
	"vendo/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reviewServiceFixtures struct {
	service  usecase.ReviewUsecase
	accounts *fakeAccountRepo
	products *fakeProductRepo
	reviews  *fakeReviewRepo
}

func createTestReviewService(t *testing.T) *reviewServiceFixtures {
	t.Helper()

	accounts := newFakeAccountRepo()
	products := newFakeProductRepo()
	reviews := newFakeReviewRepo(accounts)

	service := NewReviewService(ReviewServiceParams{
		AccountRepo: accounts,
		ProductRepo: products,
		ReviewRepo:  reviews,
		Logger:      newDiscardLogger(),
	})

	return &reviewServiceFixtures{
		service:  service,
		accounts: accounts,
		products: products,
		reviews:  reviews,
	}
}

func TestReviewService_AddReview_Success(t *testing.T) {
	fixtures := createTestReviewService(t)
	vendor := seedVendorWithStore(t, fixtures.accounts, "vendor@example.com", "Shop")
	customer := seedCustomerWithProfile(t, fixtures.accounts, "customer@example.com")
	mug := seedProduct(t, fixtures.products, vendor.ID, "Mug")

	review, err := fixtures.service.AddReview(context.Background(), customer.ID, &usecase.AddReviewInput{
		ProductID: mug.ID,
		Rating:    5,
		Comment:   "Great mug",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, review.ID)
	assert.Equal(t, customer.ID, review.AccountID)
	assert.Equal(t, "Amy Chen", review.AuthorName)
}

func TestReviewService_AddReview_UnknownProduct(t *testing.T) {
	fixtures := createTestReviewService(t)
	customer := seedCustomerWithProfile(t, fixtures.accounts, "customer@example.com")

	review, err := fixtures.service.AddReview(context.Background(), customer.ID, &usecase.AddReviewInput{
		ProductID: uuid.New(),
		Rating:    3,
	})

	require.Error(t, err)
	assert.Nil(t, review)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestReviewService_AddReview_UnknownProductBeforeProfileCheck(t *testing.T) {
	fixtures := createTestReviewService(t)
	// No customer profile either; the bogus product still wins.
	customer := seedAccount(t, fixtures.accounts, entity.RoleCustomer, "customer@example.com")

	_, err := fixtures.service.AddReview(context.Background(), customer.ID, &usecase.AddReviewInput{
		ProductID: uuid.New(),
		Rating:    3,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	assert.NotErrorIs(t, err, domainerrors.ErrCustomerProfileMissing)
}

func TestReviewService_AddReview_RequiresCustomerProfile(t *testing.T) {
	fixtures := createTestReviewService(t)
	vendor := seedVendorWithStore(t, fixtures.accounts, "vendor@example.com", "Shop")
	customer := seedAccount(t, fixtures.accounts, entity.RoleCustomer, "customer@example.com")
	mug := seedProduct(t, fixtures.products, vendor.ID, "Mug")

	review, err := fixtures.service.AddReview(context.Background(), customer.ID, &usecase.AddReviewInput{
		ProductID: mug.ID,
		Rating:    4,
	})

	require.Error(t, err)
	assert.Nil(t, review)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerProfileMissing)
}

func TestReviewService_AddReview_RatingOutOfRange(t *testing.T) {
	fixtures := createTestReviewService(t)
	customer := seedCustomerWithProfile(t, fixtures.accounts, "customer@example.com")

	for _, rating := range []int{0, 6, -1} {
		_, err := fixtures.service.AddReview(context.Background(), customer.ID, &usecase.AddReviewInput{
			ProductID: uuid.New(),
			Rating:    rating,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestReviewService_AddReview_CommentTooLong(t *testing.T) {
	fixtures := createTestReviewService(t)
	customer := seedCustomerWithProfile(t, fixtures.accounts, "customer@example.com")

	_, err := fixtures.service.AddReview(context.Background(), customer.ID, &usecase.AddReviewInput{
		ProductID: uuid.New(),
		Rating:    3,
		Comment:   strings.Repeat("x", 501),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReviewService_ReviewsForProduct_ResolvesAuthorNames(t *testing.T) {
	fixtures := createTestReviewService(t)
	vendor := seedVendorWithStore(t, fixtures.accounts, "vendor@example.com", "Shop")
	customer := seedCustomerWithProfile(t, fixtures.accounts, "customer@example.com")
	mug := seedProduct(t, fixtures.products, vendor.ID, "Mug")

	_, err := fixtures.service.AddReview(context.Background(), customer.ID, &usecase.AddReviewInput{
		ProductID: mug.ID,
		Rating:    4,
		Comment:   "Solid",
	})
	require.NoError(t, err)

	reviews, err := fixtures.service.ReviewsForProduct(context.Background(), mug.ID)

	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Amy Chen", reviews[0].AuthorName)
	assert.Equal(t, 4, reviews[0].Rating)
}

func TestReviewService_ReviewsForProduct_UnknownProduct(t *testing.T) {
	fixtures := createTestReviewService(t)

	reviews, err := fixtures.service.ReviewsForProduct(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Nil(t, reviews)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestReviewService_UpdateReview_AuthorOnly(t *testing.T) {
	fixtures := createTestReviewService(t)
	vendor := seedVendorWithStore(t, fixtures.accounts, "vendor@example.com", "Shop")
	author := seedCustomerWithProfile(t, fixtures.accounts, "author@example.com")
	other := seedCustomerWithProfile(t, fixtures.accounts, "other@example.com")
	mug := seedProduct(t, fixtures.products, vendor.ID, "Mug")

	review, err := fixtures.service.AddReview(context.Background(), author.ID, &usecase.AddReviewInput{
		ProductID: mug.ID,
		Rating:    2,
		Comment:   "Meh",
	})
	require.NoError(t, err)

	updated, err := fixtures.service.UpdateReview(context.Background(), author.ID, review.ID, &usecase.UpdateReviewInput{
		Rating:  4,
		Comment: "Grew on me",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Rating)
	assert.Equal(t, "Grew on me", updated.Comment)

	_, err = fixtures.service.UpdateReview(context.Background(), other.ID, review.ID, &usecase.UpdateReviewInput{
		Rating:  1,
		Comment: "Vandalism",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}

func TestReviewService_UpdateReview_MissingReportsNotFound(t *testing.T) {
	fixtures := createTestReviewService(t)
	customer := seedCustomerWithProfile(t, fixtures.accounts, "customer@example.com")

	// A missing review reports not-found, never an ownership violation.
	updated, err := fixtures.service.UpdateReview(context.Background(), customer.ID, uuid.New(), &usecase.UpdateReviewInput{
		Rating: 3,
	})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
	assert.NotErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}

func TestReviewService_DeleteReview_NonAuthorLeavesReview(t *testing.T) {
	fixtures := createTestReviewService(t)
	vendor := seedVendorWithStore(t, fixtures.accounts, "vendor@example.com", "Shop")
	author := seedCustomerWithProfile(t, fixtures.accounts, "author@example.com")
	other := seedCustomerWithProfile(t, fixtures.accounts, "other@example.com")
	mug := seedProduct(t, fixtures.products, vendor.ID, "Mug")

	review, err := fixtures.service.AddReview(context.Background(), author.ID, &usecase.AddReviewInput{
		ProductID: mug.ID,
		Rating:    5,
	})
	require.NoError(t, err)

	err = fixtures.service.DeleteReview(context.Background(), other.ID, review.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)

	// The review survives the rejected attempt.
	_, err = fixtures.reviews.FindByID(context.Background(), review.ID)
	assert.NoError(t, err)

	// The author can remove it.
	require.NoError(t, fixtures.service.DeleteReview(context.Background(), author.ID, review.ID))
	_, err = fixtures.reviews.FindByID(context.Background(), review.ID)
	assert.Error(t, err)
}

func TestReviewService_ReviewsForVendor_GroupedByProduct(t *testing.T) {
	fixtures := createTestReviewService(t)
	vendor := seedVendorWithStore(t, fixtures.accounts, "vendor@example.com", "Shop")
	customer := seedCustomerWithProfile(t, fixtures.accounts, "customer@example.com")
	mug := seedProduct(t, fixtures.products, vendor.ID, "Mug")
	plate := seedProduct(t, fixtures.products, vendor.ID, "Plate")

	_, err := fixtures.service.AddReview(context.Background(), customer.ID, &usecase.AddReviewInput{
		ProductID: mug.ID,
		Rating:    5,
	})
	require.NoError(t, err)

	grouped, err := fixtures.service.ReviewsForVendor(context.Background(), vendor.ID)

	require.NoError(t, err)
	require.Len(t, grouped, 2)

	byProduct := make(map[uuid.UUID]int)
	for _, group := range grouped {
		byProduct[group.ProductID] = len(group.Reviews)
	}
	assert.Equal(t, 1, byProduct[mug.ID])
	assert.Equal(t, 0, byProduct[plate.ID])
}

func TestReviewService_ReviewsForVendor_RequiresStore(t *testing.T) {
	fixtures := createTestReviewService(t)
	vendor := seedAccount(t, fixtures.accounts, entity.RoleVendor, "vendor@example.com")

	grouped, err := fixtures.service.ReviewsForVendor(context.Background(), vendor.ID)

	require.Error(t, err)
	assert.Nil(t, grouped)
	assert.ErrorIs(t, err, domainerrors.ErrVendorProfileMissing)
}

func TestReviewService_ReviewsForCustomer(t *testing.T) {
	fixtures := createTestReviewService(t)
	vendor := seedVendorWithStore(t, fixtures.accounts, "vendor@example.com", "Shop")
	author := seedCustomerWithProfile(t, fixtures.accounts, "author@example.com")
	other := seedCustomerWithProfile(t, fixtures.accounts, "other@example.com")
	mug := seedProduct(t, fixtures.products, vendor.ID, "Mug")

	_, err := fixtures.service.AddReview(context.Background(), author.ID, &usecase.AddReviewInput{
		ProductID: mug.ID, Rating: 5,
	})
	require.NoError(t, err)
	_, err = fixtures.service.AddReview(context.Background(), other.ID, &usecase.AddReviewInput{
		ProductID: mug.ID, Rating: 1,
	})
	require.NoError(t, err)

	reviews, err := fixtures.service.ReviewsForCustomer(context.Background(), author.ID)

	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, author.ID, reviews[0].AccountID)
}
