package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/repository"
	"storefront/internal/service"
	"storefront/internal/view"
)

const (
	invoiceNotFoundHTML = "<html><body><h1>Invoice not found</h1></body></html>"
	invoiceErrorHTML    = "<html><body><h1>Error loading invoice</h1></body></html>"
)

type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
	}
}

func (h *InvoiceHandler) ListInvoices(c echo.Context) error {
	invoices, err := h.invoiceService.ListInvoices(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch invoices").SetInternal(err)
	}

	return respond(c, http.StatusOK, invoices, "")
}

func (h *InvoiceHandler) GetInvoice(c echo.Context) error {
	invoice, err := h.invoiceService.GetInvoice(c.Request().Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Invoice not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch invoice").SetInternal(err)
	}

	return respond(c, http.StatusOK, invoice, "")
}

// ViewInvoice serves the printable invoice page. Errors are answered in
// HTML too, since the page is opened directly in a browser tab.
func (h *InvoiceHandler) ViewInvoice(c echo.Context) error {
	ctx := c.Request().Context()

	invoice, err := h.invoiceService.GetInvoice(ctx, c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return c.HTML(http.StatusNotFound, invoiceNotFoundHTML)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to load invoice", slog.String("invoice_id", c.Param("id")), slog.Any("error", err))
		return c.HTML(http.StatusInternalServerError, invoiceErrorHTML)
	}

	if err := c.Render(http.StatusOK, view.InvoiceTemplate, view.NewInvoicePage(invoice)); err != nil {
		slog.ErrorContext(ctx, "failed to render invoice", slog.String("invoice_id", invoice.ID), slog.Any("error", err))
		return c.HTML(http.StatusInternalServerError, invoiceErrorHTML)
	}
	return nil
}
