package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bookverse/bookstore-api/internal/core/domain"
)

func cartFixture(t *testing.T) (*CartService, *stubUserRepo, *stubBookRepo, *domain.User) {
	t.Helper()
	users := newStubUserRepo()
	books := newStubBookRepo()
	user, err := users.Create(context.Background(), &domain.User{
		Username:   "alice",
		Email:      "alice@example.com",
		Favourites: []string{},
		Cart:       []string{},
		Orders:     []string{},
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return NewCartService(users, books, zerolog.Nop()), users, books, user
}

func TestAddToCart(t *testing.T) {
	svc, users, books, user := cartFixture(t)
	book := books.add("Dune")

	added, err := svc.AddToCart(context.Background(), "alice", book.ID)
	if err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	if !added {
		t.Error("added = false on first add")
	}

	// Second add is a no-op, not an error.
	added, err = svc.AddToCart(context.Background(), "alice", book.ID)
	if err != nil {
		t.Fatalf("second AddToCart: %v", err)
	}
	if added {
		t.Error("added = true on duplicate add")
	}

	if got := users.users[user.ID].Cart; len(got) != 1 {
		t.Errorf("cart = %v, want exactly one entry", got)
	}
}

func TestAddToCartUnknownBook(t *testing.T) {
	svc, _, _, _ := cartFixture(t)

	if _, err := svc.AddToCart(context.Background(), "alice", "book-404"); !errors.Is(err, domain.ErrBookNotFound) {
		t.Fatalf("unknown book: got %v, want ErrBookNotFound", err)
	}
}

func TestRemoveFromCart(t *testing.T) {
	svc, users, books, user := cartFixture(t)
	book := books.add("Dune")

	if _, err := svc.AddToCart(context.Background(), "alice", book.ID); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	if err := svc.RemoveFromCart(context.Background(), "alice", book.ID); err != nil {
		t.Fatalf("RemoveFromCart: %v", err)
	}
	if got := users.users[user.ID].Cart; len(got) != 0 {
		t.Errorf("cart = %v, want empty", got)
	}

	// Removing again must fail, not silently no-op.
	if err := svc.RemoveFromCart(context.Background(), "alice", book.ID); !errors.Is(err, domain.ErrBookNotInCart) {
		t.Fatalf("remove absent book: got %v, want ErrBookNotInCart", err)
	}
}

func TestGetCartOrderAndStaleRefs(t *testing.T) {
	svc, _, books, _ := cartFixture(t)
	b1 := books.add("First")
	b2 := books.add("Second")
	b3 := books.add("Third")

	for _, b := range []*domain.Book{b1, b2, b3} {
		if _, err := svc.AddToCart(context.Background(), "alice", b.ID); err != nil {
			t.Fatalf("AddToCart(%s): %v", b.ID, err)
		}
	}

	// b2 disappears from the catalog; the cart still references it.
	if err := books.Delete(context.Background(), b2.ID); err != nil {
		t.Fatalf("delete book: %v", err)
	}

	got, err := svc.GetCart(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetCart: %v", err)
	}

	// Latest added first, stale reference dropped.
	want := []string{b3.ID, b1.ID}
	if len(got) != len(want) {
		t.Fatalf("cart has %d books, want %d", len(got), len(want))
	}
	for i, b := range got {
		if b.ID != want[i] {
			t.Errorf("cart[%d] = %s, want %s", i, b.ID, want[i])
		}
	}
}

func TestFavourites(t *testing.T) {
	svc, _, books, _ := cartFixture(t)
	b1 := books.add("First")
	b2 := books.add("Second")

	for _, b := range []*domain.Book{b1, b2} {
		added, err := svc.AddFavourite(context.Background(), "alice", b.ID)
		if err != nil {
			t.Fatalf("AddFavourite(%s): %v", b.ID, err)
		}
		if !added {
			t.Errorf("added = false for %s", b.ID)
		}
	}

	// Duplicate favourite is a no-op.
	added, err := svc.AddFavourite(context.Background(), "alice", b1.ID)
	if err != nil {
		t.Fatalf("duplicate AddFavourite: %v", err)
	}
	if added {
		t.Error("added = true on duplicate favourite")
	}

	// Favourites keep insertion order.
	got, err := svc.GetFavourites(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetFavourites: %v", err)
	}
	want := []string{b1.ID, b2.ID}
	if len(got) != len(want) {
		t.Fatalf("favourites has %d books, want %d", len(got), len(want))
	}
	for i, b := range got {
		if b.ID != want[i] {
			t.Errorf("favourites[%d] = %s, want %s", i, b.ID, want[i])
		}
	}

	if err := svc.RemoveFavourite(context.Background(), "alice", b1.ID); err != nil {
		t.Fatalf("RemoveFavourite: %v", err)
	}
	if err := svc.RemoveFavourite(context.Background(), "alice", b1.ID); !errors.Is(err, domain.ErrBookNotInFavourites) {
		t.Fatalf("remove absent favourite: got %v, want ErrBookNotInFavourites", err)
	}
}
