package http

import (
	"errors"
	"net/http"

	"bursary-portal/internal/domain/access"
	"bursary-portal/internal/domain/account"
	"bursary-portal/internal/domain/application"
	"bursary-portal/internal/domain/document"
	"bursary-portal/internal/domain/reference"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// statusFor maps domain errors to HTTP codes. Anything unrecognised is a 500.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, application.ErrNotFound),
		errors.Is(err, reference.ErrNotFound),
		errors.Is(err, account.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, access.ErrUnauthenticated):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, account.ErrInvalidLogin):
		return http.StatusUnauthorized, account.ErrInvalidLogin.Error()
	case errors.Is(err, access.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, application.ErrInvalidState):
		return http.StatusConflict, application.ErrInvalidState.Error()
	case errors.Is(err, account.ErrUsernameTaken):
		return http.StatusConflict, account.ErrUsernameTaken.Error()
	case errors.Is(err, account.ErrAlreadyBound):
		return http.StatusConflict, account.ErrAlreadyBound.Error()
	case errors.Is(err, application.ErrUpstream),
		errors.Is(err, document.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "storage temporarily unavailable, please retry"
	}
	return http.StatusInternalServerError, "internal error"
}

// respondError writes the JSON error body for err. Validation failures carry
// one detail per field message.
func respondError(c echo.Context, log *zap.Logger, err error) error {
	var ve *application.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: fieldDetails(ve.Fields),
		})
	}
	code, msg := statusFor(err)
	if code >= http.StatusInternalServerError {
		log.Error("request failed",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err))
	}
	return c.JSON(code, ErrorResponse{Error: msg})
}

func fieldDetails(fe application.FieldErrors) []FieldError {
	out := make([]FieldError, 0, len(fe))
	for _, f := range fe.Fields() {
		for _, m := range fe[f] {
			out = append(out, FieldError{Field: f, Message: m})
		}
	}
	return out
}

// decode binds and validates req. When ok is false the response has already been written.
func decode(c echo.Context, req any) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return true, nil
}
