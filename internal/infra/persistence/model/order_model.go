package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Orders are append-only; there is no
// updated_at column because nothing ever mutates a placed order.
type OrderModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderNumber int64     `gorm:"unique;not null"`
	CustomerID  uuid.UUID `gorm:"type:uuid;index;not null"`
	TotalAmount float64   `gorm:"type:numeric(12,2);not null"`
	CreatedAt   time.Time

	Lines []OrderLineModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderLineModel mirrors the 'order_lines' table. Position preserves the
// client's submission order, and the same product may appear on several lines.
type OrderLineModel struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;index;not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderLineModel) TableName() string {
	return "order_lines"
}
