// Package view renders the printable invoice page.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"storefront/internal/model"
)

// InvoiceTemplate is the template name handlers pass to c.Render.
const InvoiceTemplate = "invoice.html"

//go:embed templates/*.html
var templateFS embed.FS

type Company struct {
	Name         string
	Address      []string
	SupportEmail string
}

var DefaultCompany = Company{
	Name:         "Premium",
	Address:      []string{"123 Business Street", "New York, NY 10001", "United States"},
	SupportEmail: "support@premium.com",
}

// InvoicePage is the data behind the invoice template.
type InvoicePage struct {
	*model.Invoice
	Company Company
}

// GrandTotal is the order total plus shipping.
func (p InvoicePage) GrandTotal() decimal.Decimal {
	return p.Total.Add(p.Shipping)
}

func NewInvoicePage(inv *model.Invoice) InvoicePage {
	return InvoicePage{Invoice: inv, Company: DefaultCompany}
}

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders an amount like "$1,299.99".
func FormatUSD(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	d = d.Round(2)
	fixed := d.StringFixed(2)
	cents := fixed[strings.IndexByte(fixed, '.'):]
	return sign + "$" + printer.Sprintf("%d", d.IntPart()) + cents
}

func LongDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

func BadgeClass(status model.InvoiceStatus) string {
	switch status {
	case model.InvoiceStatusPaid:
		return "badge-success"
	case model.InvoiceStatusPending:
		return "badge-warning"
	default:
		return "badge-error"
	}
}

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"usd":      FormatUSD,
		"longDate": LongDate,
		"badge":    BadgeClass,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
