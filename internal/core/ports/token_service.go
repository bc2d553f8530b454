package ports

import (
	"github.com/bookverse/bookstore-api/internal/core/domain"
)

// TokenService issues and verifies signed session tokens.
type TokenService interface {
	// Issue encodes the user's identity claims into a signed token with a
	// fixed validity window. No side effects beyond computation.
	Issue(user *domain.User) (string, error)
	// Verify checks signature and expiry. It returns domain.ErrTokenExpired
	// for a well-formed but time-lapsed token and domain.ErrTokenInvalid for
	// anything malformed or signed with a different key.
	Verify(token string) (*domain.SessionClaims, error)
}
