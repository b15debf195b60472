package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ynsvrs/practice11/internal/server"
)

// SystemHandler serves endpoints that are not part of the products API.
type SystemHandler struct {
	Handler
}

func NewSystemHandler(s *server.Server) *SystemHandler {
	return &SystemHandler{
		Handler: NewHandler(s),
	}
}

// RootResponse is the body of GET /.
type RootResponse struct {
	Message string `json:"message"`
}

// Root reports that the API process is up. It does not check the database.
func (h *SystemHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, RootResponse{Message: "API is running"})
}
