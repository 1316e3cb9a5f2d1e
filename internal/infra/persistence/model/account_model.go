// Package model contains the GORM persistence models mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FirstName    string    `gorm:"type:varchar(100);not null"`
	LastName     string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	VendorProfile   *VendorProfileModel   `gorm:"foreignKey:AccountID"`
	CustomerProfile *CustomerProfileModel `gorm:"foreignKey:AccountID"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// VendorProfileModel mirrors the 'vendor_profiles' table. AccountID references accounts.id (UUID).
type VendorProfileModel struct {
	AccountID        uuid.UUID `gorm:"primaryKey"`
	StoreName        string    `gorm:"type:varchar(100);not null"`
	StoreLogo        string    `gorm:"type:varchar(500)"`
	StoreDescription string    `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Followers []VendorFollowerModel `gorm:"foreignKey:VendorID"`
}

// TableName explicitly sets the table name for GORM.
func (VendorProfileModel) TableName() string {
	return "vendor_profiles"
}

// CustomerProfileModel mirrors the 'customer_profiles' table. AccountID references accounts.id (UUID).
type CustomerProfileModel struct {
	AccountID uuid.UUID `gorm:"primaryKey"`
	Profile   string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Purchases []CustomerPurchaseModel `gorm:"foreignKey:CustomerID"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerProfileModel) TableName() string {
	return "customer_profiles"
}

// VendorFollowerModel mirrors the 'vendor_followers' join table.
// The composite primary key makes a follow edge naturally idempotent.
type VendorFollowerModel struct {
	VendorID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorFollowerModel) TableName() string {
	return "vendor_followers"
}

// CustomerPurchaseModel mirrors the 'customer_purchases' table. It is an
// append-only purchase history: the same product may appear many times.
type CustomerPurchaseModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerPurchaseModel) TableName() string {
	return "customer_purchases"
}
