package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"storefront/internal/model"
	"storefront/internal/service"
)

type ShippingHandler struct{}

func NewShippingHandler() *ShippingHandler {
	return &ShippingHandler{}
}

// GetQuote applies the checkout shipping rule to ?subtotal=.
func (h *ShippingHandler) GetQuote(c echo.Context) error {
	subtotal, err := decimal.NewFromString(c.QueryParam("subtotal"))
	if err != nil || model.CheckAmount(subtotal) != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid subtotal")
	}

	return respond(c, http.StatusOK, service.QuoteShipping(subtotal), "")
}
