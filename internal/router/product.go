package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ynsvrs/practice11/internal/handler"
)

func registerProductRoutes(api *echo.Group, h *handler.Handlers) {
	products := api.Group("/products")

	products.POST("", handler.Handle[handler.CreateProductRequest](h.Product.Handler, h.Product.CreateProduct, http.StatusCreated))
	products.GET("", handler.Handle[handler.ListProductsRequest](h.Product.Handler, h.Product.ListProducts, http.StatusOK))
	products.GET("/:id", handler.Handle[handler.ProductIDRequest](h.Product.Handler, h.Product.GetProduct, http.StatusOK))
	products.PUT("/:id", handler.Handle[handler.UpdateProductRequest](h.Product.Handler, h.Product.UpdateProduct, http.StatusOK))
	products.DELETE("/:id", handler.Handle[handler.ProductIDRequest](h.Product.Handler, h.Product.DeleteProduct, http.StatusOK))
}
