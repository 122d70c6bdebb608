// Package memory is the default record store: process-lifetime maps guarded
// by a single RWMutex.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"storefront/internal/model"
	"storefront/internal/repository"
)

type Store struct {
	mu  sync.RWMutex
	d   *dataset
	now func() time.Time
}

type dataset struct {
	users     map[string]*model.User
	usernames map[string]string
	products  map[string]*model.Product
	orders    map[string]*model.Order
	invoices  map[string]*model.Invoice
	byOrder   map[string]string // order id -> invoice id
	seq       int64
	numbers   *repository.InvoiceSequence
}

type Option func(*Store)

// WithClock replaces time.Now for createdAt/date stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		d: &dataset{
			users:     make(map[string]*model.User),
			usernames: make(map[string]string),
			products:  make(map[string]*model.Product),
			orders:    make(map[string]*model.Order),
			invoices:  make(map[string]*model.Invoice),
			byOrder:   make(map[string]string),
			numbers:   repository.NewInvoiceSequence(repository.InvoiceNumberBase),
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Users() repository.UserRepository       { return &userRepo{s: s} }
func (s *Store) Products() repository.ProductRepository { return &productRepo{s: s} }
func (s *Store) Orders() repository.OrderRepository     { return &orderRepo{s: s} }
func (s *Store) Invoices() repository.InvoiceRepository { return &invoiceRepo{s: s} }

func (s *Store) Transaction(ctx context.Context, fn func(tx repository.Store) error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	j := &journal{}
	defer func() {
		if p := recover(); p != nil {
			j.rollback()
			panic(p)
		}
	}()

	if err = fn(&txStore{s: s, j: j}); err != nil {
		j.rollback()
	}
	return err
}

// txStore is the view handed to Transaction callbacks. The store lock is
// already held, so its repositories skip locking and journal every write.
type txStore struct {
	s *Store
	j *journal
}

func (t *txStore) Users() repository.UserRepository       { return &userRepo{s: t.s, j: t.j} }
func (t *txStore) Products() repository.ProductRepository { return &productRepo{s: t.s, j: t.j} }
func (t *txStore) Orders() repository.OrderRepository     { return &orderRepo{s: t.s, j: t.j} }
func (t *txStore) Invoices() repository.InvoiceRepository { return &invoiceRepo{s: t.s, j: t.j} }

func (t *txStore) Transaction(_ context.Context, fn func(tx repository.Store) error) error {
	return fn(t)
}

type journal struct {
	undo []func()
}

func (j *journal) record(fn func()) {
	if j != nil {
		j.undo = append(j.undo, fn)
	}
}

func (j *journal) rollback() {
	for i := len(j.undo) - 1; i >= 0; i-- {
		j.undo[i]()
	}
	j.undo = nil
}

func (s *Store) read(j *journal, fn func(d *dataset)) {
	if j == nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	fn(s.d)
}

func (s *Store) write(j *journal, fn func(d *dataset) error) error {
	if j == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	return fn(s.d)
}

func (d *dataset) nextSeq() int64 {
	d.seq++
	return d.seq
}

func sortedValues[V any](m map[string]V, less func(a, b V) int) []V {
	out := make([]V, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	slices.SortFunc(out, less)
	return out
}
