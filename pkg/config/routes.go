package config

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the read-only config route.
func RegisterRoutes(e *echo.Echo, cfg *Config) {
	h := &handler{cfg: cfg}

	e.GET("/config", h.retrieve)
}
