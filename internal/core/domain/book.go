package domain

import (
	"errors"
	"time"
)

var ErrBookNotFound = errors.New("book not found")

// Book is a catalog entry. Cart, favourite and order operations treat its ID
// as an opaque reference and only ever check it for existence.
type Book struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Price     float64   `json:"price"`
	Desc      string    `json:"desc"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
