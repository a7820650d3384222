package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"bursary-portal/internal/domain/access"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const principalKey = "bursary.principal"

// Authenticator resolves a bearer token to the acting principal.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*access.Principal, error)
}

func SetPrincipal(c echo.Context, p *access.Principal) { c.Set(principalKey, p) }

// PrincipalFrom returns nil when the request was not authenticated.
func PrincipalFrom(c echo.Context) *access.Principal {
	p, _ := c.Get(principalKey).(*access.Principal)
	return p
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// Auth rejects requests without a valid bearer token and stores the principal on the context.
func Auth(a Authenticator, log *zap.Logger) echo.MiddlewareFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			p, err := a.Authenticate(c.Request().Context(), token)
			if errors.Is(err, access.ErrUnauthenticated) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}
			if err != nil {
				log.Error("resolve principal", zap.Error(err))
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "authentication unavailable"})
			}
			SetPrincipal(c, p)
			return next(c)
		}
	}
}
