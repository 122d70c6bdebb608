package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"storefront/internal/auth"
)

const (
	userIDKey   = "user_id"
	usernameKey = "username"
)

type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// Identity attaches the caller to the context when a valid bearer token is
// present. Requests without a token, or with a bad one, pass through unchanged.
func Identity(tokens TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if token, ok := strings.CutPrefix(header, "Bearer "); ok && token != "" {
				if claims, err := tokens.Parse(token); err == nil {
					c.Set(userIDKey, claims.Subject)
					c.Set(usernameKey, claims.Username)
				}
			}
			return next(c)
		}
	}
}

// Username returns the name set by Identity, or "" for anonymous requests.
func Username(c echo.Context) string {
	name, _ := c.Get(usernameKey).(string)
	return name
}

func UserID(c echo.Context) string {
	id, _ := c.Get(userIDKey).(string)
	return id
}
