package usecase

import (
	"context"

	"vendo/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateProductInput defines the data required to list a new product.
type CreateProductInput struct {
	Title             string
	Description       string
	Price             float64
	QuantityAvailable int
}

// UpdateProductInput carries a partial product update. Zero-valued fields are
// left untouched, so an empty input is a no-op.
type UpdateProductInput struct {
	Title             string
	Description       string
	Price             float64
	QuantityAvailable int
}

// CatalogUsecase defines the interface for product catalog operations.
type CatalogUsecase interface {
	// CreateProduct lists a new product under the caller's store.
	// The caller must have a vendor profile.
	CreateProduct(ctx context.Context, callerID uuid.UUID, input *CreateProductInput) (*entity.Product, error)

	// ListProducts returns the whole live catalog. Public, unpaginated.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// GetProduct returns a single live product.
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)

	// UpdateProduct applies a partial update. Owner only.
	UpdateProduct(ctx context.Context, callerID, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct tombstones a product. Owner only.
	DeleteProduct(ctx context.Context, callerID, productID uuid.UUID) error
}
