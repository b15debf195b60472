package handler

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ynsvrs/practice11/internal/errs"
)

// requestValidator is shared by all request types; validator caches struct
// metadata and is safe for concurrent use.
var requestValidator = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(priceValue, Price{})
	return v
}

// Price is a JSON price that accepts a number or a numeric string.
//
// null and blank strings leave it unset so `required` reports the field as
// missing. Any other non-numeric value, NaN and infinities are rejected while
// decoding.
type Price struct {
	value   float64
	present bool
}

// NewPrice returns a set Price.
func NewPrice(v float64) Price {
	return Price{value: v, present: true}
}

func (p Price) Float64() float64 {
	return p.value
}

func (p Price) IsSet() bool {
	return p.present
}

func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return invalidPrice()
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			return nil
		}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return invalidPrice()
	}

	*p = NewPrice(v)
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	if !p.present {
		return []byte("null"), nil
	}
	return json.Marshal(p.value)
}

func invalidPrice() error {
	return errs.NewInvalidFieldsError([]errs.FieldError{{Field: "price", Error: "must be a number"}})
}

// priceValue exposes a Price to the validator as *float64 so that `required`
// means "present". Zero and negative prices are both accepted.
func priceValue(field reflect.Value) interface{} {
	p, ok := field.Interface().(Price)
	if !ok || !p.present {
		return (*float64)(nil)
	}
	v := p.value
	return &v
}

// CreateProductRequest is the body of POST /api/products.
type CreateProductRequest struct {
	Name     string `json:"name" validate:"required"`
	Price    Price  `json:"price" validate:"required"`
	Category string `json:"category" validate:"required"`
}

func (r *CreateProductRequest) Validate() error {
	return requestValidator.Struct(r)
}

// ProductIDRequest carries the :id path parameter. A request body never
// overrides it.
type ProductIDRequest struct {
	ID string `param:"id" json:"-"`
}

func (r *ProductIDRequest) Validate() error {
	return validateID(r.ID)
}

// UpdateProductRequest carries :id and the raw JSON object of fields to set.
type UpdateProductRequest struct {
	ID     string         `param:"id" json:"-"`
	Fields map[string]any `json:"-"`
}

// UnmarshalJSON captures the whole body as the field set. The body must be
// a JSON object (or null, treated as no fields).
func (r *UpdateProductRequest) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.Fields)
}

func (r *UpdateProductRequest) Validate() error {
	return validateID(r.ID)
}

// validateID accepts exactly what primitive.ObjectIDFromHex accepts, so a
// valid id is never rejected later by the service.
func validateID(id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return errs.NewInvalidIDError()
	}
	return nil
}
