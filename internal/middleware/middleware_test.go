package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ynsvrs/practice11/internal/config"
	"github.com/ynsvrs/practice11/internal/errs"
	"github.com/ynsvrs/practice11/internal/server"
)

func TestRequestID(t *testing.T) {
	e := echo.New()
	var seen string
	h := RequestID()(func(c echo.Context) error {
		seen = GetRequestID(c)
		return c.NoContent(http.StatusOK)
	})

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		require.NoError(t, h(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))

		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
		assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		require.NoError(t, h(e.NewContext(req, rec)))

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	})

	t.Run("oversized is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("x", maxRequestIDLength+1))
		require.NoError(t, h(e.NewContext(req, httptest.NewRecorder())))

		assert.Len(t, seen, 36)
	})
}

func TestToHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"app error", errs.NewMissingFieldsError(nil), http.StatusBadRequest, errs.MessageMissingFields},
		{"route not found", echo.ErrNotFound, http.StatusNotFound, errs.MessageEndpointNotFound},
		{"method not allowed", echo.ErrMethodNotAllowed, http.StatusNotFound, errs.MessageEndpointNotFound},
		{"body too large", echo.ErrStatusRequestEntityTooLarge, http.StatusRequestEntityTooLarge, "Request Entity Too Large"},
		{"echo internal", echo.ErrInternalServerError, http.StatusInternalServerError, errs.MessageServerError},
		{"missing document", errors.Wrap(mongo.ErrNoDocuments, "find"), http.StatusNotFound, errs.MessageNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, errs.MessageServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToHTTPError(tt.err)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantMsg, got.Message)
		})
	}
}

func TestGlobalErrorHandler_WritesErrorBody(t *testing.T) {
	log := zerolog.Nop()
	s := &server.Server{Config: &config.Config{}, Logger: &log}
	global := NewGlobalMiddlewares(s)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/products/x", nil), rec)

	global.GlobalErrorHandler(errs.NewInvalidIDError(), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid ID"}`, rec.Body.String())
}
