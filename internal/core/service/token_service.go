package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bookverse/bookstore-api/internal/core/domain"
)

const defaultTokenTTL = 30 * 24 * time.Hour

// TokenService issues and verifies HS256-signed session tokens. The signing
// secret is process configuration injected at startup and never rotated at
// runtime; rotating it invalidates all previously issued tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

type sessionTokenClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Issue encodes the user's username and role plus an expiry into a signed
// token. The role is captured at issuance time; later role changes do not
// revoke already-issued tokens.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := sessionTokenClaims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and expiry. A well-formed token past its expiry
// yields domain.ErrTokenExpired; anything malformed, tampered with, or signed
// by another key yields domain.ErrTokenInvalid.
func (s *TokenService) Verify(token string) (*domain.SessionClaims, error) {
	var claims sessionTokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}
	return &domain.SessionClaims{Username: claims.Username, Role: claims.Role}, nil
}
