package middleware

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/decisionreplay/backend/internal/core/domain"
)

// Authenticator resolves a bearer token to a principal.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*domain.Principal, error)
}

// Session requires a valid opaque bearer token and injects the resolved
// principal into the echo context. Rejections are returned as the
// authenticator's typed error for the HTTP error handler to render.
func Session(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, err := auth.Authenticate(c.Request().Context(), BearerToken(c))
			if err != nil {
				return err
			}
			c.Set(keyPrincipal, principal)
			return next(c)
		}
	}
}
