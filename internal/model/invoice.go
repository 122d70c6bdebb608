package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// InvoiceItem is an order line without the product image.
type InvoiceItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

func (i InvoiceItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Invoice struct {
	ID            string          `gorm:"primaryKey;size:64;not null" json:"id"`
	InvoiceNumber string          `gorm:"size:32;uniqueIndex;not null" json:"invoiceNumber"`
	OrderID       string          `gorm:"size:64;index;not null" json:"orderId"`
	Customer      Customer        `gorm:"serializer:json;not null" json:"customer"`
	Items         []InvoiceItem   `gorm:"serializer:json;not null" json:"items"`
	Total         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	Shipping      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"shipping"`
	Status        InvoiceStatus   `gorm:"size:32;not null" json:"status"`
	Date          time.Time       `gorm:"index;not null" json:"date"`

	Seq int64 `gorm:"index;not null" json:"-"`
}

func (inv *Invoice) Clone() *Invoice {
	c := *inv
	c.Items = append([]InvoiceItem(nil), inv.Items...)
	return &c
}

// InvoiceItemsFrom copies order lines, dropping the image.
func InvoiceItemsFrom(items []OrderItem) []InvoiceItem {
	out := make([]InvoiceItem, len(items))
	for i, item := range items {
		out[i] = InvoiceItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}
	return out
}
