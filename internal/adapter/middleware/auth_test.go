package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bursary-portal/internal/domain/access"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type authFunc func(ctx context.Context, token string) (*access.Principal, error)

func (f authFunc) Authenticate(ctx context.Context, token string) (*access.Principal, error) {
	return f(ctx, token)
}

func TestAuth(t *testing.T) {
	a := authFunc(func(_ context.Context, token string) (*access.Principal, error) {
		switch token {
		case "good":
			return &access.Principal{UserID: "u1", Role: access.RoleStudent}, nil
		case "down":
			return nil, errors.New("db down")
		}
		return nil, access.ErrUnauthenticated
	})
	e := echo.New()
	e.Use(Auth(a, zap.NewNop()))
	e.GET("/me", func(c echo.Context) error {
		return c.String(http.StatusOK, PrincipalFrom(c).UserID)
	})

	tests := []struct {
		header string
		want   int
		body   string
	}{
		{"Bearer good", http.StatusOK, "u1"},
		{"bearer good", http.StatusOK, "u1"},
		{"", http.StatusUnauthorized, ""},
		{"Basic Zm9vOmJhcg==", http.StatusUnauthorized, ""},
		{"Bearer ", http.StatusUnauthorized, ""},
		{"Bearer expired", http.StatusUnauthorized, ""},
		{"Bearer down", http.StatusServiceUnavailable, ""},
	}
	for _, tc := range tests {
		t.Run(tc.header, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tc.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tc.want, rec.Code)
			if tc.body != "" {
				assert.Equal(t, tc.body, rec.Body.String())
			}
		})
	}
}

func TestPrincipalFrom_Unset(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Nil(t, PrincipalFrom(c))
}
