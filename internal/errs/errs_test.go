package errs

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPError_OnlyMessageIsSerialized(t *testing.T) {
	err := NewMissingFieldsError([]FieldError{{Field: "price", Error: "is required"}})

	body, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)
	assert.JSONEq(t, `{"error":"Missing fields"}`, string(body))
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		err    *HTTPError
		status int
		code   string
		msg    string
	}{
		{NewMissingFieldsError(nil), http.StatusBadRequest, "MISSING_FIELDS", MessageMissingFields},
		{NewInvalidFieldsError(nil), http.StatusBadRequest, "INVALID_FIELDS", MessageInvalidFields},
		{NewInvalidBodyError(), http.StatusBadRequest, "INVALID_BODY", MessageInvalidBody},
		{NewInvalidIDError(), http.StatusBadRequest, "INVALID_ID", MessageInvalidID},
		{NewBadRequestError("nope", nil, nil), http.StatusBadRequest, "BAD_REQUEST", "nope"},
		{NewNotFoundError(MessageNotFound, nil), http.StatusNotFound, "NOT_FOUND", MessageNotFound},
		{NewEndpointNotFoundError(), http.StatusNotFound, "ENDPOINT_NOT_FOUND", MessageEndpointNotFound},
		{NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", MessageServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.msg, tt.err.Error())
		})
	}
}

func TestWithMessage(t *testing.T) {
	original := NewInvalidFieldsError(nil)
	changed := original.WithMessage("Duplicate key")

	assert.Equal(t, "Duplicate key", changed.Message)
	assert.Equal(t, original.Status, changed.Status)
	assert.Equal(t, MessageInvalidFields, original.Message)
}
