package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for store share code generation and parsing.
type QRCodeService interface {
	// GenerateStoreQR generates a PNG QR code deep-linking a vendor's store page.
	GenerateStoreQR(vendorID uuid.UUID) ([]byte, error)

	// ParseStoreQR parses scanned QR payload and returns the vendor ID.
	ParseStoreQR(qrData string) (uuid.UUID, error)
}
