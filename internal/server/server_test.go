package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/auth"
	"storefront/internal/config"
	"storefront/internal/repository"
	"storefront/internal/repository/memory"
	"storefront/internal/service"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func newTestServer(t *testing.T, cfg config.HTTPServer) *Server {
	t.Helper()

	store := memory.New()
	require.NoError(t, store.Products().Seed(context.Background(), repository.DefaultProducts()))
	tokens := auth.NewTokenIssuer("secret", time.Hour)

	srv, err := NewServer(cfg, Deps{
		Tokens:   tokens,
		Catalog:  service.NewCatalogService(store.Products()),
		Orders:   service.NewOrderService(store),
		Invoices: service.NewInvoiceService(store.Invoices()),
		Users:    service.NewUserService(store.Users(), tokens),
	})
	require.NoError(t, err)
	return srv
}

func do(t *testing.T, srv *Server, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

const headphonesOrder = `{
	"customer": {"email": "john@example.com", "fullName": "John Doe", "address": "1 Main St",
		"city": "Springfield", "zipCode": "12345", "country": "US"},
	"items": [{"id": "1", "name": "Premium Wireless Headphones", "price": 299.99, "quantity": 1,
		"image": "https://example.com/h.jpg"}],
	"total": 299.99
}`

func TestHealth(t *testing.T) {
	srv := newTestServer(t, config.HTTPServer{})

	rec, env := do(t, srv, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}

func TestProducts(t *testing.T) {
	srv := newTestServer(t, config.HTTPServer{})

	rec, env := do(t, srv, http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var products []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &products))
	require.Len(t, products, 12)
	assert.Equal(t, "1", products[0]["id"])
	assert.Equal(t, 299.99, products[0]["price"])
	assert.NotContains(t, products[0], "Seq")

	rec, env = do(t, srv, http.MethodGet, "/api/products/nonexistent", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Product not found", env.Message)
}

func TestOrderToInvoice(t *testing.T) {
	srv := newTestServer(t, config.HTTPServer{})

	rec, env := do(t, srv, http.MethodPost, "/api/orders", headphonesOrder)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, env.Success)
	assert.Equal(t, "Order created successfully", env.Message)

	var created struct {
		Order struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"order"`
		InvoiceURL *string `json:"invoiceUrl"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "paid", created.Order.Status)
	require.NotNil(t, created.InvoiceURL)
	assert.True(t, strings.HasSuffix(*created.InvoiceURL, "/view"))

	rec, env = do(t, srv, http.MethodGet, "/api/invoices", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var invoices []struct {
		ID            string  `json:"id"`
		InvoiceNumber string  `json:"invoiceNumber"`
		OrderID       string  `json:"orderId"`
		Total         float64 `json:"total"`
		Shipping      float64 `json:"shipping"`
		Status        string  `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &invoices))
	require.Len(t, invoices, 1)
	inv := invoices[0]
	assert.Equal(t, "INV-1000", inv.InvoiceNumber)
	assert.Equal(t, created.Order.ID, inv.OrderID)
	assert.Equal(t, 299.99, inv.Total)
	assert.Equal(t, 0.0, inv.Shipping)
	assert.Equal(t, "/api/invoices/"+inv.ID+"/view", *created.InvoiceURL)

	rec, _ = do(t, srv, http.MethodGet, "/api/orders/"+created.Order.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, srv, http.MethodGet, "/api/invoices/"+inv.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, srv, http.MethodGet, *created.InvoiceURL, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html"))
	assert.Contains(t, rec.Body.String(), "INV-1000")
	assert.Contains(t, rec.Body.String(), "$299.99")
	assert.Contains(t, rec.Body.String(), "FREE")
}

func TestCreateOrder_Rejected(t *testing.T) {
	srv := newTestServer(t, config.HTTPServer{})

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"malformed json", `{"customer":`, "Invalid request body"},
		{"bad email", strings.Replace(headphonesOrder, "john@example.com", "not-an-email", 1), "customer.email"},
		{"empty items", `{"customer": {"email": "a@b.co", "fullName": "A", "address": "B", "city": "C", "zipCode": "D", "country": "E"}, "items": [], "total": 10}`, "items"},
		{"zero quantity", strings.Replace(headphonesOrder, `"quantity": 1`, `"quantity": 0`, 1), "items[0].quantity"},
		{"huge total", strings.Replace(headphonesOrder, `"total": 299.99`, `"total": 1e50000000`, 1), "total"},
		{"huge price", strings.Replace(headphonesOrder, `"price": 299.99`, `"price": 1e50000000`, 1), "items[0].price"},
		{"sub-cent total", strings.Replace(headphonesOrder, `"total": 299.99`, `"total": 299.999`, 1), "total"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, srv, http.MethodPost, "/api/orders", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, env.Success)
			assert.Contains(t, env.Message, tt.message)
		})
	}

	_, env := do(t, srv, http.MethodGet, "/api/orders", "")
	assert.JSONEq(t, `[]`, string(env.Data))
	_, env = do(t, srv, http.MethodGet, "/api/invoices", "")
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestNotFound(t *testing.T) {
	srv := newTestServer(t, config.HTTPServer{})

	rec, env := do(t, srv, http.MethodGet, "/api/orders/nonexistent", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Order not found", env.Message)

	rec, env = do(t, srv, http.MethodGet, "/api/invoices/nonexistent", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Invoice not found", env.Message)

	rec, _ = do(t, srv, http.MethodGet, "/api/invoices/nonexistent/view", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "<html><body><h1>Invoice not found</h1></body></html>", rec.Body.String())

	rec, env = do(t, srv, http.MethodGet, "/api/nowhere", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
}

func TestShippingQuote(t *testing.T) {
	srv := newTestServer(t, config.HTTPServer{})

	rec, env := do(t, srv, http.MethodGet, "/api/shipping/quote?subtotal=49.99", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"subtotal":49.99,"shipping":9.99,"total":59.98}`, string(env.Data))

	rec, env = do(t, srv, http.MethodGet, "/api/shipping/quote?subtotal=50", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"subtotal":50,"shipping":0,"total":50}`, string(env.Data))

	for _, q := range []string{"", "abc", "-1", "1e50000000", "1e-50000000", "0.001", "100000000"} {
		rec, _ = do(t, srv, http.MethodGet, "/api/shipping/quote?subtotal="+q, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestCreateOrder_BodyTooLarge(t *testing.T) {
	srv := newTestServer(t, config.HTTPServer{})

	body := strings.Replace(headphonesOrder, `"total": 299.99`, `"total": 1`+strings.Repeat("0", 2<<20), 1)
	rec, env := do(t, srv, http.MethodPost, "/api/orders", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.False(t, env.Success)
}

func TestRegisterAndLogin(t *testing.T) {
	srv := newTestServer(t, config.HTTPServer{})
	creds := `{"username": "ada", "password": "analytical"}`

	rec, env := do(t, srv, http.MethodPost, "/api/users", creds)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, string(env.Data), "password")

	rec, _ = do(t, srv, http.MethodPost, "/api/users", creds)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, env = do(t, srv, http.MethodPost, "/api/auth/login", creds)
	require.Equal(t, http.StatusOK, rec.Code)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	assert.NotEmpty(t, login.Token)

	rec, _ = do(t, srv, http.MethodPost, "/api/auth/login", `{"username": "ada", "password": "wrong-one"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// tokens are optional everywhere
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	out := httptest.NewRecorder()
	srv.Handler().ServeHTTP(out, req)
	assert.Equal(t, http.StatusOK, out.Code)
}

func TestOrderRateLimit(t *testing.T) {
	srv := newTestServer(t, config.HTTPServer{RateLimit: 1})

	rec, _ := do(t, srv, http.MethodPost, "/api/orders", headphonesOrder)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := do(t, srv, http.MethodPost, "/api/orders", headphonesOrder)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.False(t, env.Success)

	// reads are not limited
	rec, _ = do(t, srv, http.MethodGet, "/api/orders", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStaticDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>shop</h1>"), 0o644))
	srv := newTestServer(t, config.HTTPServer{StaticDir: dir})

	rec, _ := do(t, srv, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<h1>shop</h1>")

	rec, _ = do(t, srv, http.MethodGet, "/checkout", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, srv, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
