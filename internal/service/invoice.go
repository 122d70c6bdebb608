package service

import (
	"context"

	"storefront/internal/model"
	"storefront/internal/repository"
)

// InvoiceViewURL is the path of the printable page for an invoice.
func InvoiceViewURL(invoiceID string) string {
	return "/api/invoices/" + invoiceID + "/view"
}

type InvoiceService interface {
	ListInvoices(ctx context.Context) ([]*model.Invoice, error)
	GetInvoice(ctx context.Context, id string) (*model.Invoice, error)
}

type invoiceServiceImpl struct {
	invoiceRepo repository.InvoiceRepository
}

func NewInvoiceService(invoiceRepo repository.InvoiceRepository) InvoiceService {
	return &invoiceServiceImpl{
		invoiceRepo: invoiceRepo,
	}
}

func (s *invoiceServiceImpl) ListInvoices(ctx context.Context) ([]*model.Invoice, error) {
	return s.invoiceRepo.FindAll(ctx)
}

func (s *invoiceServiceImpl) GetInvoice(ctx context.Context, id string) (*model.Invoice, error) {
	return s.invoiceRepo.FindByID(ctx, id)
}
