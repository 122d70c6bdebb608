package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/dto"
	"storefront/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) Register(c echo.Context) error {
	var req dto.CredentialsRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.userService.Register(c.Request().Context(), req.Username, req.Password)
	if errors.Is(err, service.ErrUsernameTaken) {
		return echo.NewHTTPError(http.StatusConflict, "Username already taken")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create user").SetInternal(err)
	}

	return respond(c, http.StatusCreated, user, "")
}

func (h *UserHandler) Login(c echo.Context) error {
	var req dto.CredentialsRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, token, err := h.userService.Login(c.Request().Context(), req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid username or password")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to log in").SetInternal(err)
	}

	return respond(c, http.StatusOK, dto.LoginResponse{Token: token, User: user}, "")
}
