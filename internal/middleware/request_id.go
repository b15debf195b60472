package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RequestIDHeader carries the request correlation id in both directions.
	RequestIDHeader = echo.HeaderXRequestID

	// RequestIDKey is the Echo context key of the request id.
	RequestIDKey = "request_id"

	// maxRequestIDLength caps ids accepted from clients; longer ones are replaced.
	maxRequestIDLength = 128
)

// RequestID gives every request a correlation id.
//
//   - an inbound X-Request-ID is reused, so ids from a proxy or a client
//     survive into our logs and traces
//   - a missing or oversized one is replaced by a fresh UUID v4
//
// The id is stored in Echo context (see GetRequestID) and set on the
// response header. It runs first in the chain so every later middleware,
// the request logger included, can read it.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(RequestIDHeader)
			if requestID == "" || len(requestID) > maxRequestIDLength {
				requestID = uuid.New().String()
			}

			c.Set(RequestIDKey, requestID)
			c.Response().Header().Set(RequestIDHeader, requestID)

			return next(c)
		}
	}
}

// GetRequestID returns the request id, or "" when RequestID did not run.
func GetRequestID(c echo.Context) string {
	if requestID, ok := c.Get(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
