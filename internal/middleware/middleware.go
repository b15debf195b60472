// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request ids, request logging, tracing, CORS, body limits
// and panic recovery, and translate errors into responses.
package middleware
