package memory

import (
	"cmp"
	"context"

	"github.com/google/uuid"

	"storefront/internal/model"
	"storefront/internal/repository"
)

type orderRepo struct {
	s *Store
	j *journal
}

func (r *orderRepo) Create(ctx context.Context, order *model.Order) error {
	return r.s.write(r.j, func(d *dataset) error {
		if order.ID == "" {
			order.ID = uuid.NewString()
		}
		if _, exists := d.orders[order.ID]; exists {
			return repository.ErrDuplicate
		}
		if order.CreatedAt.IsZero() {
			order.CreatedAt = r.s.now()
		}
		order.Seq = d.nextSeq()

		stored := order.Clone()
		d.orders[stored.ID] = stored
		r.j.record(func() { delete(d.orders, stored.ID) })
		return nil
	})
}

func (r *orderRepo) FindByID(ctx context.Context, id string) (*model.Order, error) {
	var found *model.Order
	r.s.read(r.j, func(d *dataset) {
		if o, ok := d.orders[id]; ok {
			found = o.Clone()
		}
	})
	if found == nil {
		return nil, repository.ErrNotFound
	}
	return found, nil
}

func (r *orderRepo) FindAll(ctx context.Context) ([]*model.Order, error) {
	var orders []*model.Order
	r.s.read(r.j, func(d *dataset) {
		orders = sortedValues(d.orders, func(a, b *model.Order) int {
			if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
				return c
			}
			return cmp.Compare(b.Seq, a.Seq)
		})
		for i, o := range orders {
			orders[i] = o.Clone()
		}
	})
	return orders, nil
}
