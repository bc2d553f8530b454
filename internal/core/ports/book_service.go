package ports

import (
	"context"

	"github.com/bookverse/bookstore-api/internal/core/domain"
)

// BookInput carries the data for creating or replacing a catalog entry.
type BookInput struct {
	URL      string
	Title    string
	Author   string
	Price    float64
	Desc     string
	Language string
}

// BookService defines use-case operations for the catalog.
type BookService interface {
	Add(ctx context.Context, in BookInput) (*domain.Book, error)
	Update(ctx context.Context, id string, in BookInput) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Book, error)
	GetAll(ctx context.Context) ([]*domain.Book, error)
	GetRecent(ctx context.Context) ([]*domain.Book, error)
}
