package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ynsvrs/practice11/internal/model"
	"github.com/ynsvrs/practice11/internal/repository"
	"github.com/ynsvrs/practice11/internal/server"
)

// ProductService implements the product operations on top of a ProductStore.
//
// Store errors are returned as-is (wrapped by the repository); the global
// error handler translates them through mongoerr.
type ProductService struct {
	server *server.Server
	store  repository.ProductStore
}

func NewProductService(s *server.Server, store repository.ProductStore) *ProductService {
	return &ProductService{
		server: s,
		store:  store,
	}
}

// CreateProductInput carries already validated create fields.
type CreateProductInput struct {
	Name     string
	Price    float64
	Category string
}

func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (primitive.ObjectID, error) {
	product := &model.Product{
		Name:     input.Name,
		Price:    input.Price,
		Category: input.Category,
	}

	id, err := s.store.Insert(ctx, product)
	if err != nil {
		return primitive.NilObjectID, err
	}

	s.server.Logger.Debug().
		Str("product_id", id.Hex()).
		Msg("product created")

	return id, nil
}

func (s *ProductService) List(ctx context.Context) ([]model.Document, error) {
	return s.store.List(ctx)
}

func (s *ProductService) GetByID(ctx context.Context, id string) (model.Document, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.store.GetByID(ctx, oid)
}

// UpdateByID sets fields on the product and returns how many documents
// were modified. An empty field set never reaches the store.
func (s *ProductService) UpdateByID(ctx context.Context, id string, fields map[string]any) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}

	if len(fields) == 0 {
		return 0, nil
	}

	return s.store.UpdateByID(ctx, oid, bson.M(fields))
}

func (s *ProductService) DeleteByID(ctx context.Context, id string) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}
	return s.store.DeleteByID(ctx, oid)
}
