package domain

import (
	"errors"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")

	ErrBookNotInCart       = errors.New("book is not in the cart")
	ErrBookNotInFavourites = errors.New("book is not in favourites")
)

// User is a registered account. Favourites and Cart hold book references,
// Orders holds order references; all three are ordered by insertion.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Address      string    `json:"address"`
	Avatar       string    `json:"avatar"`
	Role         string    `json:"role"`
	Favourites   []string  `json:"favourites"`
	Cart         []string  `json:"cart"`
	Orders       []string  `json:"orders"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SessionClaims is the decoded, time-bounded identity assertion carried by a
// bearer token. It exists only for the lifetime of the signed token.
type SessionClaims struct {
	Username string
	Role     string
}
