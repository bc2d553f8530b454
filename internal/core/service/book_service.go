package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bookverse/bookstore-api/internal/api/metrics"
	"github.com/bookverse/bookstore-api/internal/core/domain"
	"github.com/bookverse/bookstore-api/internal/core/ports"
)

const recentBooksLimit = 4

// BookService implements catalog operations with a Redis read-through cache
// in front of single-book and recent-books lookups. Cache failures degrade
// to repository reads and are logged, never surfaced.
type BookService struct {
	repo  ports.BookRepository
	cache ports.BookCache
	log   zerolog.Logger
}

func NewBookService(repo ports.BookRepository, cache ports.BookCache, log zerolog.Logger) *BookService {
	return &BookService{repo: repo, cache: cache, log: log}
}

func (s *BookService) Add(ctx context.Context, in ports.BookInput) (*domain.Book, error) {
	now := time.Now().UTC()
	book := &domain.Book{
		URL:       in.URL,
		Title:     in.Title,
		Author:    in.Author,
		Price:     in.Price,
		Desc:      in.Desc,
		Language:  in.Language,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.repo.Insert(ctx, book)
	if err != nil {
		return nil, fmt.Errorf("add book: %w", err)
	}
	book.ID = id

	s.invalidateRecent(ctx)
	s.log.Info().Str("book_id", id).Str("title", book.Title).Msg("book added")
	return book, nil
}

func (s *BookService) Update(ctx context.Context, id string, in ports.BookInput) error {
	book := &domain.Book{
		URL:       in.URL,
		Title:     in.Title,
		Author:    in.Author,
		Price:     in.Price,
		Desc:      in.Desc,
		Language:  in.Language,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.repo.Update(ctx, id, book); err != nil {
		return err
	}

	if err := s.cache.InvalidateBook(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("book_id", id).Msg("cache invalidation failed")
	}
	s.invalidateRecent(ctx)
	return nil
}

func (s *BookService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.cache.InvalidateBook(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("book_id", id).Msg("cache invalidation failed")
	}
	s.invalidateRecent(ctx)
	s.log.Info().Str("book_id", id).Msg("book deleted")
	return nil
}

func (s *BookService) GetByID(ctx context.Context, id string) (*domain.Book, error) {
	if book, ok, err := s.cache.GetBook(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("book_id", id).Msg("cache read failed, falling back")
	} else if ok {
		metrics.BookCacheTotal.WithLabelValues("hit").Inc()
		return book, nil
	}
	metrics.BookCacheTotal.WithLabelValues("miss").Inc()

	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetBook(ctx, book); err != nil {
		s.log.Warn().Err(err).Str("book_id", id).Msg("cache write failed")
	}
	return book, nil
}

func (s *BookService) GetAll(ctx context.Context) ([]*domain.Book, error) {
	return s.repo.FindAll(ctx)
}

func (s *BookService) GetRecent(ctx context.Context) ([]*domain.Book, error) {
	if books, ok, err := s.cache.GetRecent(ctx); err != nil {
		s.log.Warn().Err(err).Msg("recent cache read failed, falling back")
	} else if ok {
		metrics.BookCacheTotal.WithLabelValues("hit").Inc()
		return books, nil
	}
	metrics.BookCacheTotal.WithLabelValues("miss").Inc()

	books, err := s.repo.FindRecent(ctx, recentBooksLimit)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetRecent(ctx, books); err != nil {
		s.log.Warn().Err(err).Msg("recent cache write failed")
	}
	return books, nil
}

func (s *BookService) invalidateRecent(ctx context.Context) {
	if err := s.cache.InvalidateRecent(ctx); err != nil {
		s.log.Warn().Err(err).Msg("recent cache invalidation failed")
	}
}
