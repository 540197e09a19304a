package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/decisionreplay/backend/internal/api/handler"
	"github.com/decisionreplay/backend/internal/api/middleware"
	"github.com/decisionreplay/backend/internal/core/domain"
	"github.com/decisionreplay/backend/pkg/logger"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders typed domain errors with their status, code and details.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"status":"error","code":..,"message":..}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := resolveError(err, log, c)
		body.Status = "error"
		body.RequestID = middleware.RequestContextFrom(c).RequestID

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, handler.ErrorResponse) {
	var de *domain.Error
	if errors.As(err, &de) {
		if de.Status >= http.StatusInternalServerError {
			logUnhandled(log, c, err)
		} else if de.Unwrap() != nil {
			l := logger.WithRequest(log, middleware.RequestContextFrom(c).RequestID)
			l.Debug().Err(err).Str("code", de.Code).Msg("request rejected by store")
		}
		return de.Status, handler.ErrorResponse{Code: de.Code, Message: de.Message, Details: de.Details}
	}

	// Echo's own errors (routing 404/405, body limit, rate limiter).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code >= http.StatusInternalServerError {
			logUnhandled(log, c, err)
			return http.StatusInternalServerError, internalError()
		}
		return he.Code, handler.ErrorResponse{Code: httpCode(he.Code), Message: httpMessage(he)}
	}

	// Unexpected error: log the real cause, return a generic message.
	logUnhandled(log, c, err)
	return http.StatusInternalServerError, internalError()
}

func internalError() handler.ErrorResponse {
	return handler.ErrorResponse{Code: "INTERNAL_ERROR", Message: "Internal Server Error"}
}

func logUnhandled(log zerolog.Logger, c echo.Context, err error) {
	l := logger.WithRequest(log, middleware.RequestContextFrom(c).RequestID)
	l.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")
}

func httpCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusTooManyRequests:
		return "RATE_LIMITED"
	case http.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	}
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}

func httpMessage(he *echo.HTTPError) string {
	if he.Code == http.StatusNotFound {
		return "Route not found."
	}
	return fmt.Sprintf("%v", he.Message)
}
