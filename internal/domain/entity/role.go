// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role an account can have in the marketplace.
type Role string

const (
	// RoleCustomer indicates a buying customer.
	RoleCustomer Role = "customer"
	// RoleVendor indicates a selling vendor.
	RoleVendor Role = "vendor"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleVendor:
		return true
	default:
		return false
	}
}
