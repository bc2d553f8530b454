package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bookverse/bookstore-api/internal/core/domain"
	"github.com/bookverse/bookstore-api/internal/core/ports"
)

// CartService implements cart and favourite operations. Both arrays live on
// the user document and follow the same contract: idempotent add,
// existence-guarded remove.
type CartService struct {
	users ports.UserRepository
	books ports.BookRepository
	log   zerolog.Logger
}

func NewCartService(users ports.UserRepository, books ports.BookRepository, log zerolog.Logger) *CartService {
	return &CartService{users: users, books: books, log: log}
}

// AddToCart appends the book reference to the user's cart. Adding a book
// that is already present is not an error; it reports added=false and leaves
// the cart unchanged. The check-then-push sequence can race with a
// concurrent add for the same user; the worst outcome is a single duplicate
// entry, which listing tolerates.
func (s *CartService) AddToCart(ctx context.Context, username, bookID string) (bool, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if _, err := s.books.FindByID(ctx, bookID); err != nil {
		return false, err
	}
	if contains(user.Cart, bookID) {
		return false, nil
	}
	if err := s.users.PushCart(ctx, user.ID, bookID); err != nil {
		return false, fmt.Errorf("add to cart: %w", err)
	}
	s.log.Debug().Str("username", username).Str("book_id", bookID).Msg("book added to cart")
	return true, nil
}

// RemoveFromCart removes the single matching entry. Removing a book that is
// not in the cart is an error, never a silent no-op.
func (s *CartService) RemoveFromCart(ctx context.Context, username, bookID string) error {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if !contains(user.Cart, bookID) {
		return domain.ErrBookNotInCart
	}
	if err := s.users.PullCart(ctx, user.ID, bookID); err != nil {
		return fmt.Errorf("remove from cart: %w", err)
	}
	return nil
}

// GetCart resolves the cart references against the catalog and returns them
// most recently added first. Stale references are dropped from the result
// only; the stored cart is left as-is.
func (s *CartService) GetCart(ctx context.Context, username string) ([]*domain.Book, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.resolveReversed(ctx, user.Cart)
}

func (s *CartService) AddFavourite(ctx context.Context, username, bookID string) (bool, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if _, err := s.books.FindByID(ctx, bookID); err != nil {
		return false, err
	}
	if contains(user.Favourites, bookID) {
		return false, nil
	}
	if err := s.users.PushFavourite(ctx, user.ID, bookID); err != nil {
		return false, fmt.Errorf("add favourite: %w", err)
	}
	return true, nil
}

func (s *CartService) RemoveFavourite(ctx context.Context, username, bookID string) error {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if !contains(user.Favourites, bookID) {
		return domain.ErrBookNotInFavourites
	}
	if err := s.users.PullFavourite(ctx, user.ID, bookID); err != nil {
		return fmt.Errorf("remove favourite: %w", err)
	}
	return nil
}

func (s *CartService) GetFavourites(ctx context.Context, username string) ([]*domain.Book, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, user.Favourites)
}

// resolve looks up a reference list in insertion order, dropping entries
// that no longer exist in the catalog.
func (s *CartService) resolve(ctx context.Context, ids []string) ([]*domain.Book, error) {
	byID, err := s.lookup(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Book, 0, len(ids))
	for _, id := range ids {
		if b, ok := byID[id]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}

// resolveReversed is resolve in reverse-insertion order (latest first).
func (s *CartService) resolveReversed(ctx context.Context, ids []string) ([]*domain.Book, error) {
	byID, err := s.lookup(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Book, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		if b, ok := byID[ids[i]]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *CartService) lookup(ctx context.Context, ids []string) (map[string]*domain.Book, error) {
	books, err := s.books.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve books: %w", err)
	}
	byID := make(map[string]*domain.Book, len(books))
	for _, b := range books {
		byID[b.ID] = b
	}
	return byID, nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
