// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules (like
// required fields or value ranges) defined in struct tags
// and classifies binding and validation failures into the
// client-facing errors of package errs.
package validation

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ynsvrs/practice11/internal/errs"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Validate may return validator.ValidationErrors, CustomValidationErrors,
// or a ready *errs.HTTPError which is passed through untouched.
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a specific field.
// This is used for validation errors that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string

	// Missing marks the field as absent rather than invalid.
	Missing bool
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) populates the request struct from path params and body.
//  2. payload.Validate() applies validation rules.
//  3. Failures become a 400 *errs.HTTPError:
//     malformed JSON or unsupported body -> "Invalid request body",
//     absent/empty required field -> "Missing fields",
//     anything else -> "Invalid fields".
//
// payload must be a pointer.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return classifyBindError(err)
	}

	if err := payload.Validate(); err != nil {
		var httpErr *errs.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}
		return classifyValidationError(err)
	}

	return nil
}

// classifyBindError maps an echo bind error onto a client error.
//
// Echo wraps decoder errors in *echo.HTTPError with the cause as Internal,
// and HTTPError.Unwrap exposes it to errors.As.
func classifyBindError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, echo.ErrUnsupportedMediaType) {
		return errs.NewInvalidBodyError()
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return errs.NewInvalidFieldsError([]errs.FieldError{{
			Field: field,
			Error: fmt.Sprintf("must be %s", typeErr.Type),
		}})
	}

	var invalid CustomValidationErrors
	if errors.As(err, &invalid) {
		return classifyValidationError(invalid)
	}

	return errs.NewInvalidFieldsError(nil)
}

func classifyValidationError(err error) error {
	fieldErrors, missing := extractValidationError(err)
	if missing {
		return errs.NewMissingFieldsError(fieldErrors)
	}
	return errs.NewInvalidFieldsError(fieldErrors)
}

// extractValidationError converts validation errors into field errors and
// reports whether any of them is a missing field.
func extractValidationError(err error) ([]errs.FieldError, bool) {
	var fieldErrors []errs.FieldError
	missing := false

	var customValidationErrors CustomValidationErrors
	if errors.As(err, &customValidationErrors) {
		for _, e := range customValidationErrors {
			missing = missing || e.Missing
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: e.Field,
				Error: e.Message,
			})
		}
		return fieldErrors, missing
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []errs.FieldError{{Field: "body", Error: err.Error()}}, false
	}

	for _, err := range validationErrors {
		field := strings.ToLower(err.Field())
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"
			missing = true

		case "min":
			// min is a length for strings and a value for numbers.
			if isString(err) {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max":
			if isString(err) {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "gte":
			msg = fmt.Sprintf("must be greater than or equal to %s", err.Param())

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return fieldErrors, missing
}

// isString guards Type(): it is nil for fields whose custom type func
// returned nil.
func isString(fe validator.FieldError) bool {
	t := fe.Type()
	return t != nil && t.Kind() == reflect.String
}
