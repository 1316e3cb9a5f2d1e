package usecase

import (
	"context"

	"vendo/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateStoreInput defines the data required for a vendor to open a store.
type CreateStoreInput struct {
	StoreName        string
	StoreLogo        string
	StoreDescription string
}

// CreateCustomerProfileInput defines the data required to create a customer profile.
type CreateCustomerProfileInput struct {
	Profile string
}

// UpdateCustomerProfileInput replaces the whole customer profile blob.
type UpdateCustomerProfileInput struct {
	Profile string
}

// ProfileUsecase defines the interface for vendor store and customer profile operations.
type ProfileUsecase interface {
	// CreateStore opens the caller's store. An account can hold at most one.
	CreateStore(ctx context.Context, callerID uuid.UUID, input *CreateStoreInput) (*entity.VendorProfile, error)

	// CreateCustomerProfile creates the caller's customer profile. At most one per account.
	CreateCustomerProfile(ctx context.Context, callerID uuid.UUID, input *CreateCustomerProfileInput) (*entity.CustomerProfile, error)

	// UpdateCustomerProfile replaces the caller's whole profile blob.
	UpdateCustomerProfile(ctx context.Context, callerID uuid.UUID, input *UpdateCustomerProfileInput) (*entity.CustomerProfile, error)

	// ListVendors returns every store on the site, products included.
	ListVendors(ctx context.Context) ([]*entity.VendorProfile, error)

	// Followers returns the customer accounts following the caller's store.
	Followers(ctx context.Context, callerID uuid.UUID) ([]*entity.Account, error)

	// FollowVendor records that the caller follows a store. Idempotent.
	FollowVendor(ctx context.Context, callerID, vendorID uuid.UUID) error

	// UnfollowVendor removes the caller's follow edge to a store. Idempotent.
	UnfollowVendor(ctx context.Context, callerID, vendorID uuid.UUID) error

	// FollowedVendors returns the stores the caller follows.
	FollowedVendors(ctx context.Context, callerID uuid.UUID) ([]*entity.VendorProfile, error)

	// StoreQR renders a PNG QR code deep-linking the caller's store.
	StoreQR(ctx context.Context, callerID uuid.UUID) ([]byte, error)
}
