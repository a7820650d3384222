package http

import (
	"net/http"

	"bursary-portal/internal/usecase/account"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AccountHandler struct {
	uc  *account.Usecase
	log *zap.Logger
}

func NewAccountHandler(uc *account.Usecase, log *zap.Logger) *AccountHandler {
	return &AccountHandler{uc: uc, log: orNop(log)}
}

func (h *AccountHandler) Signup(c echo.Context) error {
	var req account.CredentialsInput
	if ok, err := decode(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Signup(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *AccountHandler) Login(c echo.Context) error {
	var req account.CredentialsInput
	if ok, err := decode(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Login(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}
