package http

import (
	"net/http"

	"bursary-portal/internal/usecase/reference"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ReferenceHandler struct {
	uc  *reference.Usecase
	log *zap.Logger
}

func NewReferenceHandler(uc *reference.Usecase, log *zap.Logger) *ReferenceHandler {
	return &ReferenceHandler{uc: uc, log: orNop(log)}
}

func (h *ReferenceHandler) ListCounties(c echo.Context) error {
	out, err := h.uc.ListCounties(c.Request().Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

// ListConstituencies serves both /counties/:county_id/constituencies and
// /constituencies?county=. A bad or unknown county yields an empty list.
func (h *ReferenceHandler) ListConstituencies(c echo.Context) error {
	countyID := c.Param("county_id")
	if countyID == "" {
		countyID = c.QueryParam("county")
	}
	out, err := h.uc.ListConstituencies(c.Request().Context(), countyID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReferenceHandler) ListLevels(c echo.Context) error {
	out, err := h.uc.ListLevels(c.Request().Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}
