package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bookverse/bookstore-api/internal/core/domain"
	"github.com/bookverse/bookstore-api/internal/core/ports"
)

type stubOrderService struct {
	placed    map[string][]string // username -> book IDs
	placeErr  error
	statusErr error
	statuses  map[string]string // order ID -> last status applied
}

func newStubOrderService() *stubOrderService {
	return &stubOrderService{placed: map[string][]string{}, statuses: map[string]string{}}
}

func (s *stubOrderService) PlaceOrder(_ context.Context, username string, bookIDs []string) error {
	if s.placeErr != nil {
		return s.placeErr
	}
	s.placed[username] = append(s.placed[username], bookIDs...)
	return nil
}

func (s *stubOrderService) History(_ context.Context, username string) ([]ports.OrderHistoryItem, error) {
	return []ports.OrderHistoryItem{}, nil
}

func (s *stubOrderService) ListAll(_ context.Context) ([]ports.OrderDetail, error) {
	return []ports.OrderDetail{}, nil
}

func (s *stubOrderService) UpdateStatus(_ context.Context, orderID, status string) error {
	if s.statusErr != nil {
		return s.statusErr
	}
	s.statuses[orderID] = status
	return nil
}

func TestPlaceOrderHandler(t *testing.T) {
	orders := newStubOrderService()
	h := NewOrderHandler(orders, zerolog.Nop())

	_, c, rec := jsonRequest(http.MethodPost, "/place-order",
		`{"order":[{"book_id":"book-1"},{"book_id":"book-2"}]}`)
	c.Set("username", "alice")
	c.Set("role", domain.RoleUser)

	if err := h.Place(c); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}

	got := orders.placed["alice"]
	if len(got) != 2 || got[0] != "book-1" || got[1] != "book-2" {
		t.Errorf("placed = %v, want [book-1 book-2]", got)
	}
}

func TestPlaceOrderRequiresIdentity(t *testing.T) {
	h := NewOrderHandler(newStubOrderService(), zerolog.Nop())

	// No username in context: the request never reached the auth middleware.
	_, c, _ := jsonRequest(http.MethodPost, "/place-order",
		`{"order":[{"book_id":"book-1"}]}`)

	err := h.Place(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("got %v, want HTTP 401", err)
	}
}

func TestPlaceOrderValidation(t *testing.T) {
	h := NewOrderHandler(newStubOrderService(), zerolog.Nop())

	cases := []struct {
		name string
		body string
	}{
		{"empty order", `{"order":[]}`},
		{"missing order", `{}`},
		{"item without book_id", `{"order":[{}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, c, _ := jsonRequest(http.MethodPost, "/place-order", tc.body)
			c.Set("username", "alice")
			c.Set("role", domain.RoleUser)

			err := h.Place(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Fatalf("got %v, want HTTP 400", err)
			}
		})
	}
}

func TestUpdateStatusHandler(t *testing.T) {
	orders := newStubOrderService()
	h := NewOrderHandler(orders, zerolog.Nop())

	_, c, rec := jsonRequest(http.MethodPut, "/update-status/order-1",
		`{"status":"Delivered"}`)
	c.SetParamNames("id")
	c.SetParamValues("order-1")

	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if got := orders.statuses["order-1"]; got != "Delivered" {
		t.Errorf("applied status = %q, want Delivered", got)
	}
}

func TestUpdateStatusRejectsInvalid(t *testing.T) {
	orders := newStubOrderService()
	orders.statusErr = domain.ErrInvalidStatus
	h := NewOrderHandler(orders, zerolog.Nop())

	_, c, _ := jsonRequest(http.MethodPut, "/update-status/order-1",
		`{"status":"Bogus"}`)
	c.SetParamNames("id")
	c.SetParamValues("order-1")

	if err := h.UpdateStatus(c); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("got %v, want ErrInvalidStatus", err)
	}
}
