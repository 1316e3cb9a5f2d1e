package usecase

import (
	"context"

	"vendo/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateOrderInput defines the data required to place an order.
// TotalAmount is stored exactly as submitted; the server does not recompute it.
type CreateOrderInput struct {
	ProductIDs  []uuid.UUID
	TotalAmount float64
}

// --- Output DTOs ---

// VendorOrdersOutput returns the orders touching a vendor's products together
// with a per-product occurrence count across those orders. The count includes
// every product entry in each matched order, even products sold by other
// vendors when an order mixes stores.
type VendorOrdersOutput struct {
	Orders            []*entity.Order
	ProductOrderCount map[uuid.UUID]int
}

// OrderUsecase defines the interface for the order ledger.
type OrderUsecase interface {
	// CreateOrder places a new order for the caller. The caller must have a
	// customer profile. The ordered product IDs are appended to the caller's
	// purchase history in the same transaction.
	CreateOrder(ctx context.Context, callerID uuid.UUID, input *CreateOrderInput) (*entity.Order, error)

	// OrdersForCustomer returns all orders placed by the caller.
	OrdersForCustomer(ctx context.Context, callerID uuid.UUID) ([]*entity.Order, error)

	// OrdersForVendor returns all orders containing at least one of the
	// caller's products, with the occurrence count map.
	OrdersForVendor(ctx context.Context, callerID uuid.UUID) (*VendorOrdersOutput, error)

	// GetOrder returns a single order. Only the placing customer may read it.
	GetOrder(ctx context.Context, callerID, orderID uuid.UUID) (*entity.Order, error)
}
