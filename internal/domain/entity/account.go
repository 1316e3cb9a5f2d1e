// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core identity record of the marketplace. It carries the
// credentials and the role tag chosen at registration, plus at most one
// role-specific profile. A profile pointer is nil until the owner creates
// the matching profile through the vendor or customer endpoints.
type Account struct {
	ID              uuid.UUID        // The unique identifier for the account.
	FirstName       string           // Given name, also used as the review author display name.
	LastName        string           // Family name.
	Email           string           // Login identifier, unique across all accounts.
	PasswordHash    string           // bcrypt hash of the password. Never serialized out.
	Role            Role             // Role chosen at registration. Immutable afterwards.
	VendorProfile   *VendorProfile   // Non-nil once the account has created a store.
	CustomerProfile *CustomerProfile // Non-nil once the account has created a customer profile.
	CreatedAt       time.Time        // Timestamp of when this account was created.
	UpdatedAt       time.Time        // Timestamp of the last modification to this account.
}

// VendorProfile holds data specific to the "vendor" role. Its identifier is
// the owning account's ID, so an account can have at most one store.
type VendorProfile struct {
	AccountID        uuid.UUID   // Primary key, equal to the owning Account.ID.
	StoreName        string      // The vendor's public store name.
	StoreLogo        string      // URL of the store logo image.
	StoreDescription string      // Free-form description of the store.
	Products         []*Product  // Products sold by this store, projected from Product.VendorID.
	Followers        []uuid.UUID // Customer account IDs following this store.
	UpdatedAt        time.Time   // Timestamp of the last modification to this profile.
}

// CustomerProfile holds data specific to the "customer" role.
type CustomerProfile struct {
	AccountID uuid.UUID   // Primary key, equal to the owning Account.ID.
	Profile   string      // Opaque profile blob supplied by the client.
	Purchases []uuid.UUID // IDs of products this customer has ordered.
	UpdatedAt time.Time   // Timestamp of the last modification to this profile.
}

// DisplayName returns the public author name used on reviews.
func (a *Account) DisplayName() string {
	return a.FirstName + " " + a.LastName
}
