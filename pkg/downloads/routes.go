package downloads

import (
	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, downloadsService *Service) {
	h := &handler{downloadsService: downloadsService}

	e.GET("/books/:id/downloads", h.retrieve)
}
