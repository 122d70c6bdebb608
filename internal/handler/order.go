package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/dto"
	"storefront/internal/repository"
	"storefront/internal/service"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req dto.CreateOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	resp, err := h.orderService.SubmitOrder(c.Request().Context(), &req)
	if errors.Is(err, service.ErrPricingMismatch) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create order").SetInternal(err)
	}

	return respond(c, http.StatusOK, resp, "Order created successfully")
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderService.ListOrders(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch orders").SetInternal(err)
	}

	return respond(c, http.StatusOK, orders, "")
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.orderService.GetOrder(c.Request().Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Order not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch order").SetInternal(err)
	}

	return respond(c, http.StatusOK, order, "")
}
