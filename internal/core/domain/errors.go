package domain

import (
	"fmt"
	"net/http"
)

// Error is the single failure type surfaced by the core. Status is suitable
// for an HTTP response, Code is a short machine readable tag and Details is
// optional structured context (e.g. the violated constraint).
type Error struct {
	Status  int
	Code    string
	Message string
	Details map[string]any

	cause error
}

var (
	ErrUnauthorized       = &Error{Status: http.StatusUnauthorized, Code: "UNAUTHORIZED", Message: "Invalid or expired session token."}
	ErrForbidden          = &Error{Status: http.StatusForbidden, Code: "FORBIDDEN", Message: "Admin privileges required."}
	ErrNotFound           = &Error{Status: http.StatusNotFound, Code: "NOT_FOUND", Message: "Resource not found."}
	ErrConflict           = &Error{Status: http.StatusConflict, Code: "CONFLICT", Message: "Resource already exists."}
	ErrFKViolation        = &Error{Status: http.StatusConflict, Code: "FK_VIOLATION", Message: "Related resource not found or violates constraints."}
	ErrInvalidInput       = &Error{Status: http.StatusBadRequest, Code: "INVALID_INPUT", Message: "Invalid input format."}
	ErrInvalidCredentials = &Error{Status: http.StatusUnauthorized, Code: "INVALID_CREDENTIALS", Message: "Invalid credentials."}
	ErrUserDisabled       = &Error{Status: http.StatusForbidden, Code: "USER_DISABLED", Message: "User is not active."}
	ErrValidation         = &Error{Status: http.StatusBadRequest, Code: "VALIDATION_ERROR", Message: "Request validation failed."}
	ErrMissingToken       = &Error{Status: http.StatusBadRequest, Code: "MISSING_TOKEN", Message: "Authorization Bearer token required to logout."}
)

// NewError builds a failure with an explicit classification.
func NewError(status int, code, message string, details map[string]any) *Error {
	return &Error{Status: status, Code: code, Message: message, Details: details}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying store error, if any.
func (e *Error) Unwrap() error { return e.cause }

// Is matches on Code so that errors.Is(err, domain.ErrNotFound) holds for
// every NOT_FOUND failure regardless of message or details.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithMessage returns a copy carrying a more specific message.
func (e *Error) WithMessage(msg string) *Error {
	c := *e
	c.Message = msg
	return &c
}

// WithDetails returns a copy carrying structured details.
func (e *Error) WithDetails(details map[string]any) *Error {
	c := *e
	c.Details = details
	return &c
}

// Wrap returns a copy that records cause for logging. The cause never
// reaches the client.
func (e *Error) Wrap(cause error) *Error {
	c := *e
	c.cause = cause
	return &c
}
