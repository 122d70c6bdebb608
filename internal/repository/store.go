package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"storefront/internal/model"
)

// storeState is shared between a gorm store and the views handed to
// Transaction callbacks.
type storeState struct {
	mu       sync.Mutex // serializes writes
	seq      int64
	invoices *InvoiceSequence
}

func (s *storeState) nextSeq() int64 {
	s.seq++
	return s.seq
}

type gormStore struct {
	db    *gorm.DB
	state *storeState
	inTx  bool
}

// NewStore returns a Store over db. The tables are expected to be migrated
// already (see client.InitDB). When the database already holds invoices the
// numbering continues after them so the unique index stays valid.
func NewStore(ctx context.Context, db *gorm.DB) (Store, error) {
	var maxSeq int64
	for _, m := range []any{&model.Product{}, &model.Order{}, &model.Invoice{}} {
		var n int64
		err := db.WithContext(ctx).Model(m).
			Select("COALESCE(MAX(seq), 0)").
			Scan(&n).Error
		if err != nil {
			return nil, fmt.Errorf("read sequence: %w", err)
		}
		maxSeq = max(maxSeq, n)
	}

	var invoiceCount int64
	if err := db.WithContext(ctx).Model(&model.Invoice{}).Count(&invoiceCount).Error; err != nil {
		return nil, fmt.Errorf("count invoices: %w", err)
	}

	return &gormStore{
		db: db,
		state: &storeState{
			seq:      maxSeq,
			invoices: NewInvoiceSequence(InvoiceNumberBase + invoiceCount),
		},
	}, nil
}

func (s *gormStore) Users() UserRepository {
	return NewUserRepository(s.db)
}

func (s *gormStore) Products() ProductRepository {
	return &productRepoImpl{db: s.db, state: s.state, inTx: s.inTx}
}

func (s *gormStore) Orders() OrderRepository {
	return &orderRepoImpl{db: s.db, state: s.state, inTx: s.inTx}
}

func (s *gormStore) Invoices() InvoiceRepository {
	return &invoiceRepoImpl{db: s.db, state: s.state, inTx: s.inTx}
}

func (s *gormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	if s.inTx {
		return fn(s)
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	mark := s.state.invoices.Mark()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx, state: s.state, inTx: true})
	})
	if err != nil {
		s.state.invoices.Reset(mark)
	}
	return err
}

// withWriteLock runs fn under the store write lock unless the caller is
// already inside a transaction holding it.
func withWriteLock(state *storeState, inTx bool, fn func() error) error {
	if !inTx {
		state.mu.Lock()
		defer state.mu.Unlock()
	}
	return fn()
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
