package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/decisionreplay/backend/internal/core/domain"
)

// Issue is one entry of the VALIDATION_ERROR details.
type Issue struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
// Field paths are reported by their json (or query) name.
func NewValidator() *echoValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			issues := make([]Issue, 0, len(ve))
			for _, fe := range ve {
				issues = append(issues, fieldIssue(fe))
			}
			return validationError(issues...)
		}
		return err
	}
	return nil
}

// fieldIssue converts a single FieldError into a client-facing issue.
func fieldIssue(fe validator.FieldError) Issue {
	field := fe.Field()
	issue := Issue{Path: field, Code: fe.Tag()}
	switch fe.Tag() {
	case "required":
		issue.Message = field + " is required"
	case "email":
		issue.Message = field + " must be a valid email"
	case "min":
		issue.Message = fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		issue.Message = fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		issue.Message = fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		issue.Message = fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
	return issue
}

// validationError builds the VALIDATION_ERROR failure carrying issues.
func validationError(issues ...Issue) error {
	return domain.ErrValidation.WithDetails(map[string]any{"issues": issues})
}

// bindAndValidate binds the request into req and validates it. Malformed
// input is reported as VALIDATION_ERROR like any other schema failure.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		msg := "malformed request"
		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg = fmt.Sprintf("%v", he.Message)
		}
		return validationError(Issue{Path: "", Code: "invalid_type", Message: msg})
	}
	return c.Validate(req)
}
