package http

import (
	"context"
	"net/http"

	"bursary-portal/internal/adapter/middleware"
	"bursary-portal/internal/usecase/review"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	uc  *review.Usecase
	log *zap.Logger
}

func NewReviewHandler(uc *review.Usecase, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{uc: uc, log: orNop(log)}
}

type reviewReq struct {
	ApplicationID string `param:"application_id" validate:"required,hex32"`
}

func (h *ReviewHandler) Approve(c echo.Context) error { return h.decide(c, h.uc.Approve) }

func (h *ReviewHandler) Reject(c echo.Context) error { return h.decide(c, h.uc.Reject) }

func (h *ReviewHandler) decide(c echo.Context, fn func(context.Context, review.ReviewInput) (*review.ReviewDTO, error)) error {
	var req reviewReq
	if ok, err := decode(c, &req); !ok {
		return err
	}
	dto, err := fn(c.Request().Context(), review.ReviewInput{
		ApplicationID: req.ApplicationID,
		Principal:     middleware.PrincipalFrom(c),
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}
