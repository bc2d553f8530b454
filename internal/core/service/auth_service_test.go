package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bookverse/bookstore-api/internal/core/domain"
	"github.com/bookverse/bookstore-api/internal/core/ports"
)

func newAuthService(users *stubUserRepo) *AuthService {
	tokens := NewTokenService(testSecret, time.Hour)
	return NewAuthService(users, tokens, zerolog.Nop())
}

func registerInput() ports.RegisterInput {
	return ports.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hunter22",
		Address:  "1 Main St",
	}
}

func TestRegister(t *testing.T) {
	users := newStubUserRepo()
	svc := newAuthService(users)

	user, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if user.ID == "" {
		t.Error("user has no ID")
	}
	if user.Role != domain.RoleUser {
		t.Errorf("role = %q, want %q", user.Role, domain.RoleUser)
	}
	if user.Avatar == "" {
		t.Error("default avatar not applied")
	}
	if user.PasswordHash == "hunter22" {
		t.Error("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
	if len(user.Cart) != 0 || len(user.Favourites) != 0 || len(user.Orders) != 0 {
		t.Error("new user's lists are not empty")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	users := newStubUserRepo()
	svc := newAuthService(users)

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	in := registerInput()
	in.Email = "other@example.com"
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("duplicate username: got %v, want ErrUsernameTaken", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newStubUserRepo()
	svc := newAuthService(users)

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	in := registerInput()
	in.Username = "bob"
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("duplicate email: got %v, want ErrEmailTaken", err)
	}
}

func TestLogin(t *testing.T) {
	users := newStubUserRepo()
	svc := newAuthService(users)

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "alice", "hunter22")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("username = %q, want %q", user.Username, "alice")
	}

	// Token must verify and carry the identity claims.
	claims, err := svc.tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify issued token: %v", err)
	}
	if claims.Username != "alice" || claims.Role != domain.RoleUser {
		t.Errorf("claims = %+v, want alice/user", claims)
	}
}

func TestLoginBadPassword(t *testing.T) {
	users := newStubUserRepo()
	svc := newAuthService(users)

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "alice", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("bad password: got %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, _, err := svc.Login(context.Background(), "nobody", "whatever"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: got %v, want ErrInvalidCredentials", err)
	}
}
