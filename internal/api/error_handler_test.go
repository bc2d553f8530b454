package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bookverse/bookstore-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandlerDomainMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrBookNotFound, http.StatusNotFound},
		{domain.ErrOrderNotFound, http.StatusNotFound},
		{domain.ErrUsernameTaken, http.StatusBadRequest},
		{domain.ErrEmailTaken, http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrTokenExpired, http.StatusForbidden},
		{domain.ErrTokenInvalid, http.StatusForbidden},
		{domain.ErrBookNotInCart, http.StatusBadRequest},
		{domain.ErrBookNotInFavourites, http.StatusBadRequest},
		{domain.ErrInvalidStatus, http.StatusBadRequest},
	}

	for _, tc := range cases {
		code, body := renderError(t, tc.err)
		if code != tc.code {
			t.Errorf("%v: status = %d, want %d", tc.err, code, tc.code)
		}
		if body.Error == "" {
			t.Errorf("%v: empty error message", tc.err)
		}
	}
}

func TestErrorHandlerWrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("place order"), domain.ErrBookNotFound)
	code, _ := renderError(t, wrapped)
	if code != http.StatusNotFound {
		t.Errorf("wrapped ErrBookNotFound: status = %d, want 404", code)
	}
}

func TestErrorHandlerEchoError(t *testing.T) {
	code, body := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "authentication token required"))
	if code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", code)
	}
	if body.Error != "authentication token required" {
		t.Errorf("message = %q", body.Error)
	}
}

func TestErrorHandlerUnknownError(t *testing.T) {
	code, body := renderError(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", code)
	}
	// Internal details stay out of the response.
	if body.Error != "internal server error" {
		t.Errorf("message = %q, want generic", body.Error)
	}
}
