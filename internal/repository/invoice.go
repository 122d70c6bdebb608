package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/internal/model"
)

type invoiceRepoImpl struct {
	db    *gorm.DB
	state *storeState
	inTx  bool
}

func (r *invoiceRepoImpl) Create(ctx context.Context, invoice *model.Invoice) error {
	return withWriteLock(r.state, r.inTx, func() error {
		if invoice.ID == "" {
			invoice.ID = uuid.NewString()
		}
		invoice.Date = time.Now()
		invoice.Seq = r.state.nextSeq()

		mark := r.state.invoices.Mark()
		invoice.InvoiceNumber = r.state.invoices.Next()

		if err := r.db.WithContext(ctx).Create(invoice).Error; err != nil {
			r.state.invoices.Reset(mark)
			return translate(err)
		}
		return nil
	})
}

func (r *invoiceRepoImpl) FindByID(ctx context.Context, id string) (*model.Invoice, error) {
	var invoice model.Invoice
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&invoice).Error

	if err != nil {
		return nil, translate(err)
	}

	return &invoice, nil
}

func (r *invoiceRepoImpl) FindByOrderID(ctx context.Context, orderID string) (*model.Invoice, error) {
	var invoice model.Invoice
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&invoice).Error

	if err != nil {
		return nil, translate(err)
	}

	return &invoice, nil
}

func (r *invoiceRepoImpl) FindAll(ctx context.Context) ([]*model.Invoice, error) {
	invoices := []*model.Invoice{}
	err := r.db.WithContext(ctx).
		Order("date DESC").
		Order("seq DESC").
		Find(&invoices).Error

	if err != nil {
		return nil, err
	}

	return invoices, nil
}
