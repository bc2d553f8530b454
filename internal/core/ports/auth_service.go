package ports

import (
	"context"

	"github.com/bookverse/bookstore-api/internal/core/domain"
)

// RegisterInput carries the data needed to create a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Address  string
	Avatar   string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login verifies credentials and returns a signed session token along
	// with the authenticated user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
