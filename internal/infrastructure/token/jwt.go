package token

import (
	"errors"
	"fmt"
	"time"

	"bursary-portal/internal/domain/access"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims represents the JWT claims for our access tokens
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// JWTService issues and checks HS256 bearer tokens.
type JWTService struct {
	signingKey []byte
	issuer     string
	ttl        time.Duration
	now        func() time.Time
}

func NewJWTService(signingKey, issuer string, ttl time.Duration) *JWTService {
	return &JWTService{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		ttl:        ttl,
		now:        time.Now,
	}
}

func (s *JWTService) Issue(userID string) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.ttl)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			ID:        uuid.NewString(),
		},
	})
	signed, err := t.SignedString(s.signingKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// Validate returns the user id carried by a valid token. Every failure is reported as
// access.ErrUnauthenticated.
func (s *JWTService) Validate(tokenString string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("%w: token has expired", access.ErrUnauthenticated)
		}
		return "", fmt.Errorf("%w: invalid token", access.ErrUnauthenticated)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.UserID == "" {
		return "", fmt.Errorf("%w: invalid token claims", access.ErrUnauthenticated)
	}
	return claims.UserID, nil
}
