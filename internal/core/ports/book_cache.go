package ports

import (
	"context"

	"github.com/bookverse/bookstore-api/internal/core/domain"
)

// BookCache is a read-through cache in front of catalog lookups. Cache
// failures are never fatal; callers fall back to the repository.
type BookCache interface {
	GetBook(ctx context.Context, id string) (*domain.Book, bool, error)
	SetBook(ctx context.Context, book *domain.Book) error
	InvalidateBook(ctx context.Context, id string) error

	GetRecent(ctx context.Context) ([]*domain.Book, bool, error)
	SetRecent(ctx context.Context, books []*domain.Book) error
	InvalidateRecent(ctx context.Context) error
}
