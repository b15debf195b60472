package handler

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ynsvrs/practice11/internal/errs"
)

func TestPrice_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		set     bool
		invalid bool
	}{
		{in: `12.5`, want: 12.5, set: true},
		{in: `0`, want: 0, set: true},
		{in: `"7"`, want: 7, set: true},
		{in: `" 3.25 "`, want: 3.25, set: true},
		{in: `null`},
		{in: `""`},
		{in: `"   "`},
		{in: `"abc"`, invalid: true},
		{in: `true`, invalid: true},
		{in: `{}`, invalid: true},
		{in: `"Infinity"`, invalid: true},
		{in: `"NaN"`, invalid: true},
		{in: `1e400`, invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var p Price
			err := p.UnmarshalJSON([]byte(tt.in))

			if tt.invalid {
				var httpErr *errs.HTTPError
				require.ErrorAs(t, err, &httpErr)
				assert.Equal(t, errs.MessageInvalidFields, httpErr.Message)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.set, p.IsSet())
			assert.Equal(t, tt.want, p.Float64())
		})
	}
}

func TestCreateProductRequest_Validate(t *testing.T) {
	valid := CreateProductRequest{Name: "Pen", Price: NewPrice(0), Category: "office"}
	assert.NoError(t, valid.Validate(), "zero is a valid price")

	missingPrice := CreateProductRequest{Name: "Pen", Category: "office"}
	err := missingPrice.Validate()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "price", verrs[0].Field())
	assert.Equal(t, "required", verrs[0].Tag())

	negative := CreateProductRequest{Name: "Refund", Price: NewPrice(-0.01), Category: "office"}
	assert.NoError(t, negative.Validate(), "the sign of a price is not checked")
}

func TestCreateProductRequest_DecodesBody(t *testing.T) {
	var req CreateProductRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Pen","price":"1.20","category":"office"}`), &req))

	assert.Equal(t, "Pen", req.Name)
	assert.Equal(t, 1.2, req.Price.Float64())
	assert.Equal(t, "office", req.Category)
}

func TestUpdateProductRequest(t *testing.T) {
	var req UpdateProductRequest
	require.NoError(t, json.Unmarshal([]byte(`{"price":3,"tags":["a"]}`), &req))
	assert.Equal(t, map[string]any{"price": float64(3), "tags": []any{"a"}}, req.Fields)

	req.ID = "65f1a0c2e4b0a1b2c3d4e5f6"
	assert.NoError(t, req.Validate())

	req.ID = "65F1A0C2E4B0A1B2C3D4E5F6"
	assert.NoError(t, req.Validate(), "upper case hex is a valid ObjectID")

	req.ID = "65f1a0c2"
	var httpErr *errs.HTTPError
	require.ErrorAs(t, req.Validate(), &httpErr)
	assert.Equal(t, errs.MessageInvalidID, httpErr.Message)
}

func TestProductIDRequest_BodyDoesNotReplaceID(t *testing.T) {
	req := ProductIDRequest{ID: "65f1a0c2e4b0a1b2c3d4e5f6"}
	require.NoError(t, json.Unmarshal([]byte(`{"id":"65f1a0c2e4b0a1b2c3d4e5f7","ID":"x"}`), &req))
	assert.Equal(t, "65f1a0c2e4b0a1b2c3d4e5f6", req.ID)
}
