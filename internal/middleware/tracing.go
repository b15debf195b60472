package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/ynsvrs/practice11/internal/server"
)

// TracingMiddleware owns the New Relic related Echo middleware.
//
// It works in two layers:
//  1. NewRelicMiddleware() starts one transaction per request
//  2. EnhanceTracing() decorates that transaction and notices errors
//
// nrApp is nil when no license key is configured; both layers then pass
// requests through untouched.
type TracingMiddleware struct {
	server *server.Server
	nrApp  *newrelic.Application
}

func NewTracingMiddleware(s *server.Server, nrApp *newrelic.Application) *TracingMiddleware {
	return &TracingMiddleware{
		server: s,
		nrApp:  nrApp,
	}
}

// NewRelicMiddleware starts a transaction per request and stores it in the
// request context, which is what makes newrelic.FromContext work further
// down the chain (handlers, the Mongo command monitor, the request logger).
// Without an application it is a pass-through.
func (tm *TracingMiddleware) NewRelicMiddleware() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	return nrecho.Middleware(tm.nrApp)
}

// EnhanceTracing decorates the current transaction with request attributes
// and notices returned errors. It must run after NewRelicMiddleware.
//
// Attributes added:
//   - http.real_ip, http.user_agent
//   - request.id, so traces can be matched with log lines
//   - http.route_template
//   - http.status_code, as the client will see it
//
// Errors are wrapped with nrpkgerrors to keep their stack traces and are
// still returned, so GlobalErrorHandler writes the response.
func (tm *TracingMiddleware) EnhanceTracing() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())
			if txn == nil {
				return next(c)
			}

			txn.AddAttribute("http.real_ip", c.RealIP())
			txn.AddAttribute("http.user_agent", c.Request().UserAgent())

			if requestID := GetRequestID(c); requestID != "" {
				txn.AddAttribute("request.id", requestID)
			}

			// /api/products/:id rather than the concrete id
			if route := c.Path(); route != "" {
				txn.AddAttribute("http.route_template", route)
			}

			err := next(c)
			if err != nil {
				txn.NoticeError(nrpkgerrors.Wrap(err))
			}

			// the error handler has not written the response yet
			status := c.Response().Status
			if err != nil && !c.Response().Committed {
				status = ToHTTPError(err).Status
			}
			txn.AddAttribute("http.status_code", status)

			return err
		}
	}
}
