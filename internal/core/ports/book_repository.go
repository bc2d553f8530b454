package ports

import (
	"context"

	"github.com/bookverse/bookstore-api/internal/core/domain"
)

// BookRepository defines persistence operations for the book catalog.
type BookRepository interface {
	Insert(ctx context.Context, book *domain.Book) (string, error)
	Update(ctx context.Context, id string, book *domain.Book) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.Book, error)
	// FindByIDs performs a bulk lookup by identifier set. References that do
	// not resolve are omitted from the result, not reported as errors.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Book, error)
	FindAll(ctx context.Context) ([]*domain.Book, error)
	FindRecent(ctx context.Context, limit int) ([]*domain.Book, error)
}
