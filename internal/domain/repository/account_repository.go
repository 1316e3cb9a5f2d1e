// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"vendo/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when an account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateEmail is returned when the unique email constraint is violated.
	ErrDuplicateEmail = errors.New("email already registered")
)

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID, with profiles preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account entity to the storage.
	Create(ctx context.Context, account *entity.Account) error

	// CreateVendorProfile attaches a store to an existing account.
	// Fails if the account already has one.
	CreateVendorProfile(ctx context.Context, profile *entity.VendorProfile) error

	// CreateCustomerProfile attaches a customer profile to an existing account.
	// Fails if the account already has one.
	CreateCustomerProfile(ctx context.Context, profile *entity.CustomerProfile) error

	// FindVendorProfile retrieves the store for an account, or ErrVendorProfileNotFound.
	FindVendorProfile(ctx context.Context, accountID uuid.UUID) (*entity.VendorProfile, error)

	// FindCustomerProfile retrieves the customer profile for an account, or ErrCustomerProfileNotFound.
	FindCustomerProfile(ctx context.Context, accountID uuid.UUID) (*entity.CustomerProfile, error)

	// UpdateCustomerProfile replaces the opaque profile blob of a customer.
	UpdateCustomerProfile(ctx context.Context, profile *entity.CustomerProfile) error

	// ListVendorProfiles retrieves every store on the site.
	ListVendorProfiles(ctx context.Context) ([]*entity.VendorProfile, error)

	// AddFollower records that a customer follows a vendor. Idempotent.
	AddFollower(ctx context.Context, vendorID, customerID uuid.UUID) error

	// RemoveFollower removes a follow edge. Removing a missing edge is a no-op.
	RemoveFollower(ctx context.Context, vendorID, customerID uuid.UUID) error

	// ListFollowedVendors retrieves the stores a customer follows.
	ListFollowedVendors(ctx context.Context, customerID uuid.UUID) ([]*entity.VendorProfile, error)

	// AddPurchases appends product IDs to a customer's purchase history.
	AddPurchases(ctx context.Context, customerID uuid.UUID, productIDs []uuid.UUID) error
}

// Profile-specific not-found errors, distinct from ErrAccountNotFound so the
// application layer can answer with precondition-failed instead of 404.
var (
	ErrVendorProfileNotFound   = errors.New("vendor profile not found")
	ErrCustomerProfileNotFound = errors.New("customer profile not found")
)
