package repository

import (
	"context"
	"errors"

	"vendo/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReviewNotFound is returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the standard operations for review persistence.
type ReviewRepository interface {
	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a single review by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// ListByProduct retrieves all reviews of a product, newest first, with
	// the author display name resolved.
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)

	// ListByAuthor retrieves all reviews written by an account, newest first.
	ListByAuthor(ctx context.Context, accountID uuid.UUID) ([]*entity.Review, error)

	// Update persists a modified rating and comment.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes a review permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
