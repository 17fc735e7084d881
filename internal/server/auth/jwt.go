// Package auth issues and verifies the stateless HS256 access tokens that
// stand in for server-side sessions. A token carries only registered
// claims: sub (username), iat, and exp.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/minjongk/teamauth/internal/common"
)

// TokenService signs and verifies access tokens with a process-wide
// symmetric secret. Construct once at startup and share; the service is
// read-only after construction.
type TokenService struct {
	secret   []byte
	validity time.Duration
}

func NewTokenService(secret []byte, validity time.Duration) *TokenService {
	return &TokenService{secret: secret, validity: validity}
}

// CreateAccessToken mints a compact URL-safe token for the given subject,
// valid from now (UTC) for the configured duration.
func (s *TokenService) CreateAccessToken(subject string) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
	})

	return token.SignedString(s.secret)
}

// DecodeAccessToken verifies signature and expiry and returns the token's
// subject. Malformed tokens, bad signatures, and expired tokens all
// collapse to common.ErrInvalidToken so callers cannot distinguish the
// cause.
func (s *TokenService) DecodeAccessToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
