package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order ties a customer to the products they bought in one purchase. Orders
// are immutable once created: there is no update path, and TotalAmount is
// stored exactly as the customer submitted it.
type Order struct {
	ID          uuid.UUID   // The unique identifier for the order.
	OrderNumber int64       // Human-facing 15-digit order number, unique.
	CustomerID  uuid.UUID   // The account ID of the customer who placed the order.
	ProductIDs  []uuid.UUID // Ordered products. Duplicates allowed, order preserved.
	TotalAmount float64     // Client-supplied total. Not recomputed server-side.
	CreatedAt   time.Time   // Timestamp of when the order was placed.
}
