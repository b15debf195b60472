package service

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ynsvrs/practice11/internal/errs"
)

// parseObjectID converts a path identifier into an ObjectID.
// Any malformed value is reported as errs.NewInvalidIDError.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errs.NewInvalidIDError()
	}
	return oid, nil
}
