package mongoerr

import (
	"context"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ynsvrs/practice11/internal/errs"
)

func writeException(code int) error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Index: 0, Code: code, Message: "write failed"}},
	}
}

func TestErrCode(t *testing.T) {
	_, hexErr := primitive.ObjectIDFromHex("nope")

	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"no documents", mongo.ErrNoDocuments, NoDocuments},
		{"wrapped no documents", errors.Wrap(mongo.ErrNoDocuments, "find product"), NoDocuments},
		{"invalid hex", hexErr, InvalidObjectID},
		{"duplicate key", writeException(11000), DuplicateKey},
		{"immutable _id", writeException(66), ImmutableField},
		{"failed to parse", mongo.CommandError{Code: 9, Message: "bad update"}, FailedToParse},
		{"deadline", context.DeadlineExceeded, Timeout},
		{"unknown", errors.New("boom"), Other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrCode(tt.err))
		})
	}
}

func TestConvert_KeepsServerCode(t *testing.T) {
	converted := Convert(writeException(66))

	assert.Equal(t, ImmutableField, converted.Code)
	assert.Equal(t, 66, converted.ServerCode)

	var we mongo.WriteException
	assert.True(t, errors.As(converted, &we), "original driver error must stay reachable")
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"not found", errors.Wrap(mongo.ErrNoDocuments, "find"), http.StatusNotFound, errs.MessageNotFound},
		{"invalid id", primitive.ErrInvalidHex, http.StatusBadRequest, errs.MessageInvalidID},
		{"immutable field", writeException(66), http.StatusBadRequest, errs.MessageInvalidFields},
		{"duplicate key", writeException(11000), http.StatusBadRequest, MessageDuplicateKey},
		{"driver failure", errors.New("connection reset"), http.StatusInternalServerError, errs.MessageServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var httpErr *errs.HTTPError
			require.ErrorAs(t, HandleError(tt.err), &httpErr)
			assert.Equal(t, tt.wantStatus, httpErr.Status)
			assert.Equal(t, tt.wantMsg, httpErr.Message)
		})
	}
}

func TestHandleError_PassesHTTPErrorThrough(t *testing.T) {
	original := errs.NewMissingFieldsError(nil)
	assert.Same(t, original, HandleError(original))
	assert.NoError(t, HandleError(nil))
}
