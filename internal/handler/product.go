package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/repository"
	"storefront/internal/service"
)

type ProductHandler struct {
	catalogService service.CatalogService
}

func NewProductHandler(catalogService service.CatalogService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
	}
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.catalogService.ListProducts(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch products").SetInternal(err)
	}

	return respond(c, http.StatusOK, products, "")
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.catalogService.GetProduct(c.Request().Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch product").SetInternal(err)
	}

	return respond(c, http.StatusOK, product, "")
}
