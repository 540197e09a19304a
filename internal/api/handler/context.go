package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/decisionreplay/backend/internal/api/middleware"
	"github.com/decisionreplay/backend/internal/core/domain"
)

// principal extracts the session principal injected by middleware.Session.
// Its absence means the route was registered without the guard.
func principal(c echo.Context) (*domain.Principal, error) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok || p.User.ID == "" {
		return nil, domain.ErrUnauthorized.WithMessage("Not authenticated.")
	}
	return p, nil
}

func requestContext(c echo.Context) domain.RequestContext {
	return middleware.RequestContextFrom(c)
}

// pathID returns the named path parameter, which must be a UUID.
func pathID(c echo.Context, name string) (string, error) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", validationError(Issue{Path: name, Code: "invalid_string", Message: name + " must be a valid uuid"})
	}
	return id.String(), nil
}
