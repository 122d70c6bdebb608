package model

import "github.com/shopspring/decimal"

type Product struct {
	ID          string          `gorm:"primaryKey;size:64;not null" json:"id"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Image       string          `gorm:"size:512;not null" json:"image"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Category    string          `gorm:"size:64;index" json:"category,omitempty"`

	// Seq keeps listings in insertion order.
	Seq int64 `gorm:"index;not null" json:"-"`
}
