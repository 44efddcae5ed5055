package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	name    string
	version string
}

func NewHealthHandler(name, version string) *HealthHandler {
	return &HealthHandler{name: name, version: version}
}

func (h *HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": h.name,
		"version": h.version,
	})
}
