package middleware

import (
	"regexp"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/decisionreplay/backend/internal/core/domain"
)

// Context keys set by this package.
const (
	keyRequest   = "request_context"
	keyPrincipal = "principal"
)

var bearerPattern = regexp.MustCompile(`(?i)^Bearer\s+(.+)$`)

// RequestContext stamps every request with a correlation id (the caller's
// X-Request-Id or a fresh UUID) and the client facts recorded in sessions
// and audit entries. The id is echoed back on the response.
func RequestContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			rid := req.Header.Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, rid)
			c.Set(keyRequest, domain.RequestContext{
				IP:        c.RealIP(),
				UserAgent: req.UserAgent(),
				RequestID: rid,
			})
			return next(c)
		}
	}
}

// RequestContextFrom returns the values stored by RequestContext. Outside
// the middleware it falls back to the raw request.
func RequestContextFrom(c echo.Context) domain.RequestContext {
	if rc, ok := c.Get(keyRequest).(domain.RequestContext); ok {
		return rc
	}
	return domain.RequestContext{
		IP:        c.RealIP(),
		UserAgent: c.Request().UserAgent(),
		RequestID: c.Request().Header.Get(echo.HeaderXRequestID),
	}
}

// BearerToken extracts the token from "Authorization: Bearer <token>".
// The scheme is case-insensitive. Returns "" when absent or malformed.
func BearerToken(c echo.Context) string {
	m := bearerPattern.FindStringSubmatch(c.Request().Header.Get(echo.HeaderAuthorization))
	if m == nil {
		return ""
	}
	return m[1]
}

// PrincipalFrom returns the principal stored by Session.
func PrincipalFrom(c echo.Context) (*domain.Principal, bool) {
	p, ok := c.Get(keyPrincipal).(*domain.Principal)
	return p, ok && p != nil
}
