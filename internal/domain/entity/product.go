package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item offered by exactly one vendor. VendorID is the
// authoritative ownership reference; the vendor's product list is a
// projection of it and never diverges.
type Product struct {
	ID                uuid.UUID // The unique identifier for the product.
	Title             string    // Display title.
	Description       string    // Free-form description.
	Price             float64   // Unit price, never negative.
	QuantityAvailable int       // Advertised stock, never negative. Not decremented on order.
	VendorID          uuid.UUID // The account ID of the owning vendor.
	CreatedAt         time.Time // Timestamp of when the product was listed.
	UpdatedAt         time.Time // Timestamp of the last modification.
}
