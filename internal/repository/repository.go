// Package repository defines the record store used by the storefront and
// its gorm-backed implementation. A map-backed implementation lives in
// repository/memory.
package repository

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/model"
)

var (
	// ErrNotFound is the absence signal returned by every FindBy* lookup.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique field is already taken.
	ErrDuplicate = errors.New("duplicate record")
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

type ProductRepository interface {
	// Seed inserts products keeping their ids; products already present are left untouched.
	Seed(ctx context.Context, products []model.Product) error
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	// FindAll returns products in insertion order.
	FindAll(ctx context.Context) ([]*model.Product, error)
}

type OrderRepository interface {
	// Create assigns ID and CreatedAt when unset.
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, id string) (*model.Order, error)
	// FindAll returns orders newest first.
	FindAll(ctx context.Context) ([]*model.Order, error)
}

type InvoiceRepository interface {
	// Create assigns ID, Date and the next invoice number.
	Create(ctx context.Context, invoice *model.Invoice) error
	FindByID(ctx context.Context, id string) (*model.Invoice, error)
	FindByOrderID(ctx context.Context, orderID string) (*model.Invoice, error)
	// FindAll returns invoices newest first.
	FindAll(ctx context.Context) ([]*model.Invoice, error)
}

// Store groups the repositories of one backing store.
type Store interface {
	Users() UserRepository
	Products() ProductRepository
	Orders() OrderRepository
	Invoices() InvoiceRepository

	// Transaction runs fn in a single critical section. Writes made through
	// tx are kept only when fn returns nil. Invoice numbers drawn inside a
	// failed transaction are handed out again.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

const InvoiceNumberBase = 1000

func FormatInvoiceNumber(n int64) string {
	return fmt.Sprintf("INV-%d", n)
}

// InvoiceSequence hands out invoice numbers for the lifetime of a store.
// It is not safe for concurrent use; stores call it under their write lock.
type InvoiceSequence struct {
	next int64
}

func NewInvoiceSequence(start int64) *InvoiceSequence {
	if start < InvoiceNumberBase {
		start = InvoiceNumberBase
	}
	return &InvoiceSequence{next: start}
}

func (s *InvoiceSequence) Next() string {
	n := s.next
	s.next++
	return FormatInvoiceNumber(n)
}

// Mark returns a position that Reset can rewind to.
func (s *InvoiceSequence) Mark() int64 {
	return s.next
}

func (s *InvoiceSequence) Reset(mark int64) {
	s.next = mark
}
