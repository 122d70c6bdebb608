package memory

import (
	"cmp"
	"context"

	"github.com/google/uuid"

	"storefront/internal/model"
	"storefront/internal/repository"
)

type invoiceRepo struct {
	s *Store
	j *journal
}

func (r *invoiceRepo) Create(ctx context.Context, invoice *model.Invoice) error {
	return r.s.write(r.j, func(d *dataset) error {
		if invoice.ID == "" {
			invoice.ID = uuid.NewString()
		}
		if _, exists := d.invoices[invoice.ID]; exists {
			return repository.ErrDuplicate
		}

		mark := d.numbers.Mark()
		invoice.InvoiceNumber = d.numbers.Next()
		invoice.Date = r.s.now()
		invoice.Seq = d.nextSeq()

		stored := invoice.Clone()
		d.invoices[stored.ID] = stored
		_, hadOrder := d.byOrder[stored.OrderID]
		if !hadOrder {
			d.byOrder[stored.OrderID] = stored.ID
		}
		r.j.record(func() {
			delete(d.invoices, stored.ID)
			if !hadOrder {
				delete(d.byOrder, stored.OrderID)
			}
			d.numbers.Reset(mark)
		})
		return nil
	})
}

func (r *invoiceRepo) FindByID(ctx context.Context, id string) (*model.Invoice, error) {
	var found *model.Invoice
	r.s.read(r.j, func(d *dataset) {
		if inv, ok := d.invoices[id]; ok {
			found = inv.Clone()
		}
	})
	if found == nil {
		return nil, repository.ErrNotFound
	}
	return found, nil
}

func (r *invoiceRepo) FindByOrderID(ctx context.Context, orderID string) (*model.Invoice, error) {
	var found *model.Invoice
	r.s.read(r.j, func(d *dataset) {
		if id, ok := d.byOrder[orderID]; ok {
			found = d.invoices[id].Clone()
		}
	})
	if found == nil {
		return nil, repository.ErrNotFound
	}
	return found, nil
}

func (r *invoiceRepo) FindAll(ctx context.Context) ([]*model.Invoice, error) {
	var invoices []*model.Invoice
	r.s.read(r.j, func(d *dataset) {
		invoices = sortedValues(d.invoices, func(a, b *model.Invoice) int {
			if c := b.Date.Compare(a.Date); c != 0 {
				return c
			}
			return cmp.Compare(b.Seq, a.Seq)
		})
		for i, inv := range invoices {
			invoices[i] = inv.Clone()
		}
	})
	return invoices, nil
}
