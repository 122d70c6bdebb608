package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

type Customer struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName" validate:"required"`
	Address  string `json:"address" validate:"required"`
	City     string `json:"city" validate:"required"`
	ZipCode  string `json:"zipCode" validate:"required"`
	Country  string `json:"country" validate:"required"`
}

type OrderItem struct {
	ID       string          `json:"id" validate:"required"`
	Name     string          `json:"name" validate:"required"`
	Price    decimal.Decimal `json:"price" validate:"money"`
	Quantity int             `json:"quantity" validate:"gt=0"`
	Image    string          `json:"image"`
}

// Subtotal is price * quantity for a single line.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Order struct {
	ID        string          `gorm:"primaryKey;size:64;not null" json:"id"`
	Customer  Customer        `gorm:"serializer:json;not null" json:"customer"`
	Items     []OrderItem     `gorm:"serializer:json;not null" json:"items"`
	Total     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	Status    OrderStatus     `gorm:"size:32;index;not null" json:"status"`
	CreatedAt time.Time       `gorm:"index;not null" json:"createdAt"`

	Seq int64 `gorm:"index;not null" json:"-"`
}

// Clone returns a deep copy so callers never share the items slice.
func (o *Order) Clone() *Order {
	c := *o
	c.Items = append([]OrderItem(nil), o.Items...)
	return &c
}
