// Package handler turns HTTP requests into product service calls.
//
// Each endpoint declares a request type that binds and validates itself,
// hands it to the service layer and returns a typed response. Errors are
// returned untouched; the global error handler decides the status.
package handler
