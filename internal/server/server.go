package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"storefront/internal/config"
	"storefront/internal/dto"
	"storefront/internal/handler"
	"storefront/internal/middleware"
	"storefront/internal/service"
	"storefront/internal/validator"
	"storefront/internal/view"
)

// Deps are the services the HTTP layer serves.
type Deps struct {
	Logger   *slog.Logger
	Tokens   middleware.TokenParser
	Catalog  service.CatalogService
	Orders   service.OrderService
	Invoices service.InvoiceService
	Users    service.UserService
}

type Server struct {
	echo            *echo.Echo
	cfg             config.HTTPServer
	productHandler  *handler.ProductHandler
	orderHandler    *handler.OrderHandler
	invoiceHandler  *handler.InvoiceHandler
	shippingHandler *handler.ShippingHandler
	userHandler     *handler.UserHandler
}

func NewServer(cfg config.HTTPServer, deps Deps) (*Server, error) {
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("init renderer: %w", err)
	}

	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.New()
	e.Renderer = renderer
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.RequestLogger(log))
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.BodyLimit("1M"))
	e.Use(echoMiddleware.CORS())
	e.Use(middleware.Identity(deps.Tokens))

	if cfg.StaticDir != "" {
		e.Use(echoMiddleware.StaticWithConfig(echoMiddleware.StaticConfig{
			Root:  cfg.StaticDir,
			HTML5: true,
			Skipper: func(c echo.Context) bool {
				return strings.HasPrefix(c.Request().URL.Path, "/api/")
			},
		}))
	}

	s := &Server{
		echo:            e,
		cfg:             cfg,
		productHandler:  handler.NewProductHandler(deps.Catalog),
		orderHandler:    handler.NewOrderHandler(deps.Orders),
		invoiceHandler:  handler.NewInvoiceHandler(deps.Invoices),
		shippingHandler: handler.NewShippingHandler(),
		userHandler:     handler.NewUserHandler(deps.Users),
	}

	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.Response{Success: true, Data: map[string]string{"status": "ok"}})
	})

	// -------- catalog --------
	api.GET("/products", s.productHandler.ListProducts)
	api.GET("/products/:id", s.productHandler.GetProduct)

	// -------- orders --------
	var submitLimit []echo.MiddlewareFunc
	if s.cfg.RateLimit > 0 {
		submitLimit = append(submitLimit, echoMiddleware.RateLimiter(
			echoMiddleware.NewRateLimiterMemoryStore(rate.Limit(s.cfg.RateLimit)),
		))
	}
	api.POST("/orders", s.orderHandler.CreateOrder, submitLimit...)
	api.GET("/orders", s.orderHandler.ListOrders)
	api.GET("/orders/:id", s.orderHandler.GetOrder)

	// -------- invoices --------
	api.GET("/invoices", s.invoiceHandler.ListInvoices)
	api.GET("/invoices/:id", s.invoiceHandler.GetInvoice)
	api.GET("/invoices/:id/view", s.invoiceHandler.ViewInvoice)

	api.GET("/shipping/quote", s.shippingHandler.GetQuote)

	// -------- users --------
	api.POST("/users", s.userHandler.Register)
	api.POST("/auth/login", s.userHandler.Login)
}

// errorHandler renders every error in the response envelope.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	he := &echo.HTTPError{}
	if !errors.As(err, &he) {
		he = echo.NewHTTPError(http.StatusInternalServerError)
	}

	message, ok := he.Message.(string)
	if !ok {
		message = fmt.Sprint(he.Message)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(he.Code)
	} else {
		err = c.JSON(he.Code, dto.Response{Success: false, Message: message})
	}
	if err != nil {
		c.Logger().Error(err)
	}
}

// Handler exposes the router for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start() error {
	return s.echo.Start(s.cfg.Addr())
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
