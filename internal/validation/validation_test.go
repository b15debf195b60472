package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ynsvrs/practice11/internal/errs"
)

type testPayload struct {
	Name  string `json:"name" validate:"required"`
	Count int    `json:"count" validate:"gte=0"`
}

func (p *testPayload) Validate() error {
	return validator.New().Struct(p)
}

type idPayload struct {
	ID string `param:"id"`
}

func (p *idPayload) Validate() error {
	if p.ID != "ok" {
		return errs.NewInvalidIDError()
	}
	return nil
}

type customPayload struct{}

func (p *customPayload) Validate() error {
	return CustomValidationErrors{{Field: "price", Message: "is required", Missing: true}}
}

func newContext(body, contentType string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func requireHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	return httpErr
}

func TestBindAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		contentType string
		wantMsg     string
	}{
		{"truncated json", `{"name":`, echo.MIMEApplicationJSON, errs.MessageInvalidBody},
		{"syntax error", `{"name": "x",}`, echo.MIMEApplicationJSON, errs.MessageInvalidBody},
		{"unsupported media type", `name=x`, echo.MIMETextPlain, errs.MessageInvalidBody},
		{"wrong type", `{"name": 5}`, echo.MIMEApplicationJSON, errs.MessageInvalidFields},
		{"missing field", `{}`, echo.MIMEApplicationJSON, errs.MessageMissingFields},
		{"null field", `{"name": null}`, echo.MIMEApplicationJSON, errs.MessageMissingFields},
		{"empty field", `{"name": ""}`, echo.MIMEApplicationJSON, errs.MessageMissingFields},
		{"out of range", `{"name": "x", "count": -1}`, echo.MIMEApplicationJSON, errs.MessageInvalidFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := BindAndValidate(newContext(tt.body, tt.contentType), &testPayload{})
			assert.Equal(t, tt.wantMsg, requireHTTPError(t, err).Message)
		})
	}
}

func TestBindAndValidate_Valid(t *testing.T) {
	payload := &testPayload{}

	err := BindAndValidate(newContext(`{"name": "pen", "count": 2}`, echo.MIMEApplicationJSON), payload)
	require.NoError(t, err)
	assert.Equal(t, "pen", payload.Name)
	assert.Equal(t, 2, payload.Count)
}

func TestBindAndValidate_KeepsFieldErrors(t *testing.T) {
	err := BindAndValidate(newContext(`{"count": -3}`, echo.MIMEApplicationJSON), &testPayload{})

	httpErr := requireHTTPError(t, err)
	assert.Equal(t, errs.MessageMissingFields, httpErr.Message)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "name", Error: "is required"},
		{Field: "count", Error: "must be greater than or equal to 0"},
	}, httpErr.Errors)
}

func TestBindAndValidate_PassesHTTPErrorThrough(t *testing.T) {
	c := newContext("", "")
	c.SetParamNames("id")
	c.SetParamValues("bad")

	err := BindAndValidate(c, &idPayload{})
	assert.Equal(t, errs.MessageInvalidID, requireHTTPError(t, err).Message)
}

func TestBindAndValidate_CustomErrors(t *testing.T) {
	err := BindAndValidate(newContext(`{}`, echo.MIMEApplicationJSON), &customPayload{})

	httpErr := requireHTTPError(t, err)
	assert.Equal(t, errs.MessageMissingFields, httpErr.Message)
	assert.Equal(t, []errs.FieldError{{Field: "price", Error: "is required"}}, httpErr.Errors)
}
