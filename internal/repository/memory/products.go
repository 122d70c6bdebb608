package memory

import (
	"cmp"
	"context"

	"github.com/google/uuid"

	"storefront/internal/model"
	"storefront/internal/repository"
)

type productRepo struct {
	s *Store
	j *journal
}

func (r *productRepo) Seed(ctx context.Context, products []model.Product) error {
	return r.s.write(r.j, func(d *dataset) error {
		for _, p := range products {
			if _, exists := d.products[p.ID]; exists {
				continue
			}
			r.insert(d, p)
		}
		return nil
	})
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	return r.s.write(r.j, func(d *dataset) error {
		if product.ID == "" {
			product.ID = uuid.NewString()
		}
		if _, exists := d.products[product.ID]; exists {
			return repository.ErrDuplicate
		}
		product.Seq = r.insert(d, *product)
		return nil
	})
}

func (r *productRepo) insert(d *dataset, p model.Product) int64 {
	p.Seq = d.nextSeq()
	d.products[p.ID] = &p
	r.j.record(func() { delete(d.products, p.ID) })
	return p.Seq
}

func (r *productRepo) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var found *model.Product
	r.s.read(r.j, func(d *dataset) {
		if p, ok := d.products[id]; ok {
			c := *p
			found = &c
		}
	})
	if found == nil {
		return nil, repository.ErrNotFound
	}
	return found, nil
}

func (r *productRepo) FindAll(ctx context.Context) ([]*model.Product, error) {
	var products []*model.Product
	r.s.read(r.j, func(d *dataset) {
		products = sortedValues(d.products, func(a, b *model.Product) int {
			return cmp.Compare(a.Seq, b.Seq)
		})
		for i, p := range products {
			c := *p
			products[i] = &c
		}
	})
	return products, nil
}
