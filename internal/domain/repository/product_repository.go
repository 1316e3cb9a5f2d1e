package repository

import (
	"context"
	"errors"

	"vendo/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found or tombstoned.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for catalog persistence.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a single live product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListAll retrieves the whole live catalog, newest first.
	ListAll(ctx context.Context) ([]*entity.Product, error)

	// ListByVendor retrieves all live products owned by a vendor.
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Product, error)

	// Update persists modified product fields.
	Update(ctx context.Context, product *entity.Product) error

	// Delete tombstones a product. Existing order and review references stay
	// resolvable through FindByIDIncludingDeleted.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByIDIncludingDeleted retrieves a product even if tombstoned, for
	// resolving historical order references.
	FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*entity.Product, error)
}
