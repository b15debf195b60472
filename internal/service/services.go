// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data
package service

import (
	"github.com/ynsvrs/practice11/internal/repository"
	"github.com/ynsvrs/practice11/internal/server"
)

type Services struct {
	Product *ProductService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Product: NewProductService(s, repos.Product),
	}
}
