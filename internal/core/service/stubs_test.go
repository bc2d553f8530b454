package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bookverse/bookstore-api/internal/core/domain"
)

// In-memory fakes shared by the service tests. They implement the ports
// faithfully enough to exercise service behaviour without a database.

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by ID
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[string]*domain.User{}}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	cp := *user
	cp.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) SetAddress(_ context.Context, id, address string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Address = address
	return nil
}

func (r *stubUserRepo) PushCart(_ context.Context, id, bookID string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Cart = append(u.Cart, bookID)
	return nil
}

func (r *stubUserRepo) PullCart(_ context.Context, id, bookID string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Cart = remove(u.Cart, bookID)
	return nil
}

func (r *stubUserRepo) PushFavourite(_ context.Context, id, bookID string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Favourites = append(u.Favourites, bookID)
	return nil
}

func (r *stubUserRepo) PullFavourite(_ context.Context, id, bookID string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Favourites = remove(u.Favourites, bookID)
	return nil
}

func remove(list []string, v string) []string {
	out := list[:0]
	for _, item := range list {
		if item != v {
			out = append(out, item)
		}
	}
	return out
}

type stubBookRepo struct {
	books  map[string]*domain.Book
	nextID int
}

func newStubBookRepo() *stubBookRepo {
	return &stubBookRepo{books: map[string]*domain.Book{}}
}

func (r *stubBookRepo) add(title string) *domain.Book {
	r.nextID++
	b := &domain.Book{
		ID:        fmt.Sprintf("book-%d", r.nextID),
		Title:     title,
		Author:    "author",
		Price:     9.99,
		CreatedAt: time.Now(),
	}
	r.books[b.ID] = b
	return b
}

func (r *stubBookRepo) Insert(_ context.Context, book *domain.Book) (string, error) {
	r.nextID++
	id := fmt.Sprintf("book-%d", r.nextID)
	cp := *book
	cp.ID = id
	r.books[id] = &cp
	return id, nil
}

func (r *stubBookRepo) Update(_ context.Context, id string, book *domain.Book) error {
	if _, ok := r.books[id]; !ok {
		return domain.ErrBookNotFound
	}
	cp := *book
	cp.ID = id
	r.books[id] = &cp
	return nil
}

func (r *stubBookRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.books[id]; !ok {
		return domain.ErrBookNotFound
	}
	delete(r.books, id)
	return nil
}

func (r *stubBookRepo) FindByID(_ context.Context, id string) (*domain.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, domain.ErrBookNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *stubBookRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Book, error) {
	out := []*domain.Book{}
	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if b, ok := r.books[id]; ok {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *stubBookRepo) FindAll(_ context.Context) ([]*domain.Book, error) {
	out := []*domain.Book{}
	for _, b := range r.books {
		cp := *b
		out = append(out, &cp)
	}
	return out, nil
}

func (r *stubBookRepo) FindRecent(_ context.Context, limit int) ([]*domain.Book, error) {
	all, _ := r.FindAll(context.Background())
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// stubOrderRepo mirrors the transactional contract of the Mongo repository:
// PlaceOrder inserts the order, appends it to the user's history, and clears
// the cart entry in one step.
type stubOrderRepo struct {
	users      *stubUserRepo
	orders     map[string]*domain.Order
	nextID     int
	failBookID string // PlaceOrder fails when asked to order this book
}

var errStubPlace = errors.New("place failed")

func newStubOrderRepo(users *stubUserRepo) *stubOrderRepo {
	return &stubOrderRepo{users: users, orders: map[string]*domain.Order{}}
}

func (r *stubOrderRepo) PlaceOrder(_ context.Context, userID, bookID string) (string, error) {
	if bookID == r.failBookID && r.failBookID != "" {
		return "", errStubPlace
	}
	u, ok := r.users.users[userID]
	if !ok {
		return "", domain.ErrUserNotFound
	}
	r.nextID++
	id := fmt.Sprintf("order-%d", r.nextID)
	r.orders[id] = &domain.Order{
		ID:        id,
		UserID:    userID,
		BookID:    bookID,
		Status:    domain.StatusPlaced,
		CreatedAt: time.Now(),
	}
	u.Orders = append(u.Orders, id)
	u.Cart = remove(u.Cart, bookID)
	return id, nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *stubOrderRepo) FindAll(_ context.Context) ([]*domain.Order, error) {
	out := []*domain.Order{}
	for i := r.nextID; i >= 1; i-- {
		if o, ok := r.orders[fmt.Sprintf("order-%d", i)]; ok {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) error {
	o, ok := r.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	o.Status = status
	return nil
}
