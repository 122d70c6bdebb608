package dto

import (
	"github.com/shopspring/decimal"

	"storefront/internal/model"
)

// Response is the envelope wrapped around every JSON reply.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type CreateOrderRequest struct {
	Customer model.Customer    `json:"customer"`
	Items    []model.OrderItem `json:"items" validate:"required,min=1,dive"`
	Total    decimal.Decimal   `json:"total" validate:"money,positive"`
}

type CreateOrderResponse struct {
	Order      *model.Order `json:"order"`
	InvoiceURL *string      `json:"invoiceUrl"`
}

type ShippingQuote struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

type CredentialsRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}
