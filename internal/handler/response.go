package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/dto"
	"storefront/internal/validator"
)

func respond(c echo.Context, code int, data any, message string) error {
	return c.JSON(code, dto.Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// bind decodes and validates the request body into req.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").SetInternal(err)
	}

	if err := c.Validate(req); err != nil {
		var verr *validator.ValidationError
		if errors.As(err, &verr) {
			return echo.NewHTTPError(http.StatusBadRequest, verr.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").SetInternal(err)
	}
	return nil
}
