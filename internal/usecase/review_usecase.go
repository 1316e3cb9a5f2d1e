package usecase

import (
	"context"

	"vendo/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddReviewInput defines the data required to review a product.
type AddReviewInput struct {
	ProductID uuid.UUID
	Rating    int
	Comment   string
}

// UpdateReviewInput replaces a review's rating and comment.
type UpdateReviewInput struct {
	Rating  int
	Comment string
}

// --- Output DTOs ---

// ProductReviews groups the reviews of one product, for the vendor-wide listing.
type ProductReviews struct {
	ProductID uuid.UUID
	Reviews   []*entity.Review
}

// ReviewUsecase defines the interface for the review ledger.
type ReviewUsecase interface {
	// AddReview records a review. The product must exist and the caller must
	// have a customer profile. Nothing prevents repeat reviews of the same
	// product, or reviews of products the caller never bought.
	AddReview(ctx context.Context, callerID uuid.UUID, input *AddReviewInput) (*entity.Review, error)

	// ReviewsForProduct returns all reviews of a product with author names resolved.
	ReviewsForProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)

	// UpdateReview replaces a review's rating and comment. Author only.
	UpdateReview(ctx context.Context, callerID, reviewID uuid.UUID, input *UpdateReviewInput) (*entity.Review, error)

	// DeleteReview removes a review permanently. Author only.
	DeleteReview(ctx context.Context, callerID, reviewID uuid.UUID) error

	// ReviewsForVendor returns the reviews of every product in the caller's store.
	ReviewsForVendor(ctx context.Context, callerID uuid.UUID) ([]*ProductReviews, error)

	// ReviewsForCustomer returns the reviews the caller has written.
	ReviewsForCustomer(ctx context.Context, callerID uuid.UUID) ([]*entity.Review, error)
}
