package messaging

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Publisher defines an interface for publishing events to a message broker.
type Publisher interface {
	PublishEvent(ctx context.Context, key string, event Event) error
	Close() error
}

type Event interface {
	EventType() string
}

// OrderPlaced is emitted once an order and its invoice are committed.
type OrderPlaced struct {
	OrderID       string          `json:"orderId"`
	InvoiceID     string          `json:"invoiceId"`
	InvoiceNumber string          `json:"invoiceNumber"`
	CustomerEmail string          `json:"customerEmail"`
	Total         decimal.Decimal `json:"total"`
	Shipping      decimal.Decimal `json:"shipping"`
	PlacedAt      time.Time       `json:"placedAt"`
}

func (e OrderPlaced) EventType() string { return "OrderPlaced" }

// Nop drops every event. It is used when no broker is configured.
type Nop struct{}

func (Nop) PublishEvent(context.Context, string, Event) error { return nil }
func (Nop) Close() error                                      { return nil }
