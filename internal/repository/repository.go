// Package repository handles all interactions with the database.
//
// It issues the store commands (insert, find, update, delete) and
// abstracts the driver away from the service layer.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ynsvrs/practice11/internal/model"
)

// ProductStore is the persistence contract for products.
//
// Every method issues exactly one store command. Errors are returned
// wrapped; mongoerr classifies them.
type ProductStore interface {
	// Insert stores p and returns the generated identifier.
	Insert(ctx context.Context, p *model.Product) (primitive.ObjectID, error)

	// List returns every document in the collection. Never nil.
	List(ctx context.Context) ([]model.Document, error)

	// GetByID returns the document with the given id, or an error
	// wrapping mongo.ErrNoDocuments.
	GetByID(ctx context.Context, id primitive.ObjectID) (model.Document, error)

	// UpdateByID applies fields with $set and returns the modified count.
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error)

	// DeleteByID removes the document and returns the deleted count.
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
}
