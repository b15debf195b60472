package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ynsvrs/practice11/internal/model"
)

var _ ProductStore = (*ProductRepository)(nil)

// ProductRepository is the MongoDB implementation of ProductStore.
type ProductRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

// NewProductRepository binds the repository to a collection. A positive
// timeout bounds every command on top of the caller's context.
func NewProductRepository(collection *mongo.Collection, timeout time.Duration) *ProductRepository {
	return &ProductRepository{
		collection: collection,
		timeout:    timeout,
	}
}

func (r *ProductRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *ProductRepository) Insert(ctx context.Context, p *model.Product) (primitive.ObjectID, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.collection.InsertOne(ctx, p)
	if err != nil {
		return primitive.NilObjectID, errors.Wrap(err, "insert product")
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.Errorf("insert product: unexpected id type %T", res.InsertedID)
	}

	p.ID = id
	return id, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]model.Document, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, errors.Wrap(err, "find products")
	}

	var docs []model.Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decode products")
	}

	if docs == nil {
		docs = []model.Document{}
	}
	return docs, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id primitive.ObjectID) (model.Document, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var doc model.Document
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, errors.Wrapf(err, "find product %s", id.Hex())
	}
	return doc, nil
}

func (r *ProductRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return 0, errors.Wrapf(err, "update product %s", id.Hex())
	}
	return res.ModifiedCount, nil
}

func (r *ProductRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, errors.Wrapf(err, "delete product %s", id.Hex())
	}
	return res.DeletedCount, nil
}
