package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ynsvrs/practice11/internal/model"
	"github.com/ynsvrs/practice11/internal/server"
	"github.com/ynsvrs/practice11/internal/service"
)

// ProductHandler serves /api/products.
type ProductHandler struct {
	Handler
	productService *service.ProductService
}

func NewProductHandler(s *server.Server, productService *service.ProductService) *ProductHandler {
	return &ProductHandler{
		Handler:        NewHandler(s),
		productService: productService,
	}
}

type CreateProductResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type UpdateProductResponse struct {
	Updated int64 `json:"updated"`
}

type DeleteProductResponse struct {
	Deleted int64 `json:"deleted"`
}

// ListProductsRequest has no input; it exists to run list through the
// typed pipeline like every other route.
type ListProductsRequest struct{}

func (r *ListProductsRequest) Validate() error {
	return nil
}

func (h *ProductHandler) CreateProduct(c echo.Context, req *CreateProductRequest) (*CreateProductResponse, error) {
	id, err := h.productService.Create(c.Request().Context(), service.CreateProductInput{
		Name:     req.Name,
		Price:    req.Price.Float64(),
		Category: req.Category,
	})
	if err != nil {
		return nil, err
	}

	return &CreateProductResponse{
		Message: "Product created",
		ID:      id.Hex(),
	}, nil
}

func (h *ProductHandler) ListProducts(c echo.Context, _ *ListProductsRequest) ([]model.Document, error) {
	return h.productService.List(c.Request().Context())
}

func (h *ProductHandler) GetProduct(c echo.Context, req *ProductIDRequest) (model.Document, error) {
	return h.productService.GetByID(c.Request().Context(), req.ID)
}

func (h *ProductHandler) UpdateProduct(c echo.Context, req *UpdateProductRequest) (*UpdateProductResponse, error) {
	updated, err := h.productService.UpdateByID(c.Request().Context(), req.ID, req.Fields)
	if err != nil {
		return nil, err
	}
	return &UpdateProductResponse{Updated: updated}, nil
}

func (h *ProductHandler) DeleteProduct(c echo.Context, req *ProductIDRequest) (*DeleteProductResponse, error) {
	deleted, err := h.productService.DeleteByID(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return &DeleteProductResponse{Deleted: deleted}, nil
}
