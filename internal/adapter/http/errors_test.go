package http

import (
	"encoding/json"
	"errors"
	"fmt"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"bursary-portal/internal/domain/access"
	"bursary-portal/internal/domain/account"
	"bursary-portal/internal/domain/application"
	"bursary-portal/internal/domain/document"
	"bursary-portal/internal/domain/reference"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func TestRespondError_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"application not found", application.ErrNotFound, stdhttp.StatusNotFound},
		{"reference not found", fmt.Errorf("constituency 7: %w", reference.ErrNotFound), stdhttp.StatusNotFound},
		{"account not found", account.ErrNotFound, stdhttp.StatusNotFound},
		{"unauthenticated", access.ErrUnauthenticated, stdhttp.StatusUnauthorized},
		{"bad login", account.ErrInvalidLogin, stdhttp.StatusUnauthorized},
		{"forbidden", access.ErrForbidden, stdhttp.StatusForbidden},
		{"not pending", application.ErrInvalidState, stdhttp.StatusConflict},
		{"username taken", account.ErrUsernameTaken, stdhttp.StatusConflict},
		{"already bound", account.ErrAlreadyBound, stdhttp.StatusConflict},
		{"upstream", application.Upstream("save application", errors.New("db down")), stdhttp.StatusServiceUnavailable},
		{"blob store", fmt.Errorf("put: %w", document.ErrStoreUnavailable), stdhttp.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), stdhttp.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(stdhttp.MethodGet, "/", nil), rec)
			if err := respondError(c, zap.NewNop(), tc.err); err != nil {
				t.Fatalf("respondError: %v", err)
			}
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
			var er ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &er); err != nil || er.Error == "" {
				t.Fatalf("bad error body %q: %v", rec.Body.String(), err)
			}
		})
	}
}

func TestRespondError_ValidationDetails(t *testing.T) {
	fe := application.FieldErrors{}
	fe.Add("mother_name", "is required")
	fe.Add("constituency", "does not belong to the selected county")
	fe.Add("mother_name", "second message")

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(stdhttp.MethodPost, "/applications", nil), rec)
	if err := respondError(c, zap.NewNop(), &application.ValidationError{Fields: fe}); err != nil {
		t.Fatalf("respondError: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &er); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if er.Error != "validation failed" || len(er.Details) != 3 {
		t.Fatalf("unexpected body: %+v", er)
	}
	// fields come back sorted
	if er.Details[0].Field != "constituency" {
		t.Fatalf("details not ordered: %+v", er.Details)
	}
	if !containsFieldMsg(er.Details, "mother_name", "second message") {
		t.Fatalf("missing repeated field message: %+v", er.Details)
	}
}
