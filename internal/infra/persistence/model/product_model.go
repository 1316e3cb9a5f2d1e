package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductModel mirrors the 'products' table. Deleted products are tombstoned
// through gorm.DeletedAt so historical order lines keep resolving.
type ProductModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title             string    `gorm:"type:varchar(255);not null"`
	Description       string    `gorm:"type:text"`
	Price             float64   `gorm:"type:numeric(12,2);not null"`
	QuantityAvailable int       `gorm:"not null"`
	VendorID          uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
