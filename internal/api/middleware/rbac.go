package middleware

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/decisionreplay/backend/internal/core/domain"
)

// AdminAuthorizer checks the admin role grant of a user.
type AdminAuthorizer interface {
	AuthorizeAdmin(ctx context.Context, userID string) error
}

// RequireAdmin enforces the admin role. It must run after Session.
func RequireAdmin(authz AdminAuthorizer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := PrincipalFrom(c)
			if !ok {
				return domain.ErrUnauthorized.WithMessage("Not authenticated.")
			}
			if err := authz.AuthorizeAdmin(c.Request().Context(), principal.User.ID); err != nil {
				return err
			}
			return next(c)
		}
	}
}
