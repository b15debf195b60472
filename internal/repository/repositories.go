package repository

import (
	"github.com/ynsvrs/practice11/internal/server"
)

// Repositories is a container for all repository instances.
//
// Fields are interfaces so tests can swap in a fake store.
type Repositories struct {
	Product ProductStore
}

// NewRepositories constructs the repository container from the shared
// database handle on s.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Product: NewProductRepository(s.DB.Collection(), s.Config.Database.OperationTimeout),
	}
}
