package handler

import (
	"net/http"

	"blog/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthHandler handles liveness endpoints.
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler instance.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Root answers the bare API root so load balancers and humans can poke it.
func (h *HealthHandler) Root(c echo.Context) error {
	return c.String(http.StatusOK, "Blog API is working")
}

// Check reports service liveness.
func (h *HealthHandler) Check(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]interface{}{
		"status": "ok",
	}, "Service is healthy")
}
