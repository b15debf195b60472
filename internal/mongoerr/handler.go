package mongoerr

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ynsvrs/practice11/internal/errs"
)

// ErrCode reports the Code of err.
//
// A *mongoerr.Error anywhere in the chain wins; otherwise the raw driver
// error is classified on the fly.
func ErrCode(err error) Code {
	var mongoErr *Error
	if errors.As(err, &mongoErr) {
		return mongoErr.Code
	}
	return Convert(err).Code
}

// Convert classifies a raw driver error into an *Error.
func Convert(err error) *Error {
	classified := &Error{Code: Other, driverErr: err}
	if err == nil {
		return classified
	}
	classified.Message = err.Error()

	var serverErr mongo.ServerError
	if errors.As(err, &serverErr) {
		classified.ServerCode = firstServerCode(serverErr)
	}

	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		classified.Code = NoDocuments
	case errors.Is(err, primitive.ErrInvalidHex):
		classified.Code = InvalidObjectID
	case mongo.IsDuplicateKeyError(err):
		classified.Code = DuplicateKey
	case serverErr != nil && serverErr.HasErrorCode(serverCodeImmutableField):
		classified.Code = ImmutableField
	case serverErr != nil && serverErr.HasErrorCode(serverCodeFailedToParse):
		classified.Code = FailedToParse
	case mongo.IsTimeout(err):
		classified.Code = Timeout
	case mongo.IsNetworkError(err):
		classified.Code = Network
	}

	return classified
}

func firstServerCode(serverErr mongo.ServerError) int {
	switch e := serverErr.(type) {
	case mongo.CommandError:
		return int(e.Code)
	case mongo.WriteException:
		if len(e.WriteErrors) > 0 {
			return e.WriteErrors[0].Code
		}
		if e.WriteConcernError != nil {
			return e.WriteConcernError.Code
		}
	}
	return 0
}

// HandleError converts a store error into an application-level error.
//
// Output:
//   - If already *errs.HTTPError: returned unchanged
//   - NoDocuments: 404 "Not found"
//   - InvalidObjectID: 400 "Invalid ID"
//   - ImmutableField, FailedToParse: 400 "Invalid fields"
//   - DuplicateKey: 400 "Duplicate key"
//   - Otherwise: 500 "Server error"
func HandleError(err error) error {
	if err == nil {
		return nil
	}

	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	switch ErrCode(err) {
	case NoDocuments:
		return errs.NewNotFoundError(errs.MessageNotFound, nil)
	case InvalidObjectID:
		return errs.NewInvalidIDError()
	case ImmutableField, FailedToParse:
		return errs.NewInvalidFieldsError(nil)
	case DuplicateKey:
		code := "DUPLICATE_KEY"
		return errs.NewBadRequestError(MessageDuplicateKey, &code, nil)
	default:
		return errs.NewInternalServerError()
	}
}

// MessageDuplicateKey is returned when an insert or update violates a unique index.
const MessageDuplicateKey = "Duplicate key"
