package errs

import (
	"net/http"
)

// Client-facing messages. These strings are part of the API contract.
const (
	MessageMissingFields    = "Missing fields"
	MessageInvalidFields    = "Invalid fields"
	MessageInvalidBody      = "Invalid request body"
	MessageInvalidID        = "Invalid ID"
	MessageNotFound         = "Not found"
	MessageEndpointNotFound = "Endpoint not found"
	MessageServerError      = "Server error"
)

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// code is optional; when nil it defaults to "BAD_REQUEST".
func NewBadRequestError(message string, code *string, errors []FieldError) *HTTPError {
	// http.StatusText(400) => "Bad Request" => "BAD_REQUEST"
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))

	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusBadRequest,
		Errors:  errors,
	}
}

// NewMissingFieldsError is returned when a required field is absent, null or empty.
func NewMissingFieldsError(errors []FieldError) *HTTPError {
	code := "MISSING_FIELDS"
	return NewBadRequestError(MessageMissingFields, &code, errors)
}

// NewInvalidFieldsError is returned when a field is present but has the wrong type or value.
func NewInvalidFieldsError(errors []FieldError) *HTTPError {
	code := "INVALID_FIELDS"
	return NewBadRequestError(MessageInvalidFields, &code, errors)
}

// NewInvalidBodyError is returned when the request body is not parseable JSON.
func NewInvalidBodyError() *HTTPError {
	code := "INVALID_BODY"
	return NewBadRequestError(MessageInvalidBody, &code, nil)
}

// NewInvalidIDError is returned when a path identifier cannot be parsed
// into the store's native identifier type.
func NewInvalidIDError() *HTTPError {
	code := "INVALID_ID"
	return NewBadRequestError(MessageInvalidID, &code, nil)
}

// NewNotFoundError creates a 404 Not Found HTTPError.
//
// Supports optional custom code override similar to NewBadRequestError.
func NewNotFoundError(message string, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))

	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewEndpointNotFoundError is the fallback for any request that matches no route.
func NewEndpointNotFoundError() *HTTPError {
	code := "ENDPOINT_NOT_FOUND"
	return NewNotFoundError(MessageEndpointNotFound, &code)
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is deliberately generic; the real cause is only logged.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: MessageServerError,
		Status:  http.StatusInternalServerError,
	}
}
