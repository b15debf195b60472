package handler

import (
	"github.com/ynsvrs/practice11/internal/server"
	"github.com/ynsvrs/practice11/internal/service"
)

// Handlers is a container that groups all HTTP handlers.
type Handlers struct {
	System  *SystemHandler
	Product *ProductHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		System:  NewSystemHandler(s),
		Product: NewProductHandler(s, services.Product),
	}
}
