// Package model holds the documents persisted in the store.
package model

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is the document written by the create operation.
//
// Only creation goes through this type. Reads return a Document so that
// fields added by updates, or values whose type was changed by an update,
// are returned as stored.
type Product struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name     string             `bson:"name" json:"name"`
	Price    float64            `bson:"price" json:"price"`
	Category string             `bson:"category" json:"category"`
}

// Document is a stored product as returned by reads.
type Document = bson.M
