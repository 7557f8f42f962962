package authors

import (
	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	h := &handler{}

	e.POST("/authors/normalize", h.normalize)
}
