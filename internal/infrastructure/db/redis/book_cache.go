package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bookverse/bookstore-api/internal/core/domain"
)

const (
	bookKeyPrefix = "book:"
	recentKey     = "books:recent"
	cacheTTL      = 10 * time.Minute
)

// BookCache provides a read-through catalog cache backed by Redis.
// Values are JSON-encoded and expire after cacheTTL; catalog mutations
// invalidate eagerly.
type BookCache struct {
	client *redis.Client
}

func NewBookCache(client *redis.Client) *BookCache {
	return &BookCache{client: client}
}

func (c *BookCache) GetBook(ctx context.Context, id string) (*domain.Book, bool, error) {
	raw, err := c.client.Get(ctx, bookKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get book: %w", err)
	}

	var book domain.Book
	if err := json.Unmarshal(raw, &book); err != nil {
		return nil, false, fmt.Errorf("cache decode book: %w", err)
	}
	return &book, true, nil
}

func (c *BookCache) SetBook(ctx context.Context, book *domain.Book) error {
	raw, err := json.Marshal(book)
	if err != nil {
		return fmt.Errorf("cache encode book: %w", err)
	}
	return c.client.Set(ctx, bookKeyPrefix+book.ID, raw, cacheTTL).Err()
}

func (c *BookCache) InvalidateBook(ctx context.Context, id string) error {
	return c.client.Del(ctx, bookKeyPrefix+id).Err()
}

func (c *BookCache) GetRecent(ctx context.Context) ([]*domain.Book, bool, error) {
	raw, err := c.client.Get(ctx, recentKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get recent: %w", err)
	}

	var books []*domain.Book
	if err := json.Unmarshal(raw, &books); err != nil {
		return nil, false, fmt.Errorf("cache decode recent: %w", err)
	}
	return books, true, nil
}

func (c *BookCache) SetRecent(ctx context.Context, books []*domain.Book) error {
	raw, err := json.Marshal(books)
	if err != nil {
		return fmt.Errorf("cache encode recent: %w", err)
	}
	return c.client.Set(ctx, recentKey, raw, cacheTTL).Err()
}

func (c *BookCache) InvalidateRecent(ctx context.Context) error {
	return c.client.Del(ctx, recentKey).Err()
}
