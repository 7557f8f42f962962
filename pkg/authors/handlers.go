package authors

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NormalizePayload is the body of POST /authors/normalize.
type NormalizePayload struct {
	Citation  string `json:"citation" mod:"trim" validate:"required,max=1000"`
	Publisher string `json:"publisher,omitempty" mod:"trim" validate:"max=500"`
	Explain   bool   `json:"explain,omitempty"`
}

// NormalizeResponse is the default response of POST /authors/normalize.
type NormalizeResponse struct {
	Authors  []string `json:"authors"`
	Strategy string   `json:"strategy"`
}

type handler struct{}

func (h *handler) normalize(c echo.Context) error {
	params := NormalizePayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	exp := Explain(params.Citation, params.Publisher)
	if params.Explain {
		return errors.WithStack(c.JSON(http.StatusOK, exp))
	}

	return errors.WithStack(c.JSON(http.StatusOK, &NormalizeResponse{
		Authors:  exp.Authors,
		Strategy: exp.Strategy,
	}))
}
