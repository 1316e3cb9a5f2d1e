package repository

import (
	"context"
	"errors"

	"vendo/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
// Orders are append-only; there is no update or delete.
type OrderRepository interface {
	// Create persists a new order together with its product references.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByCustomer retrieves all orders placed by a customer, newest first.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// ListContainingProducts retrieves all orders that reference at least one
	// of the given product IDs, newest first.
	ListContainingProducts(ctx context.Context, productIDs []uuid.UUID) ([]*entity.Order, error)
}
