package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type fakeStore struct {
	active bool
}

func (s *fakeStore) Get(context.Context) (string, error) {
	if s.active {
		return "tok", nil
	}
	return "", nil
}

func (s *fakeStore) Set(_ context.Context, token string) error {
	s.active = token != ""
	return nil
}

func (s *fakeStore) IsActive(context.Context) bool {
	return s.active
}

func TestRequireSession_RedirectsWithoutSession(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var handlerRan bool
	next := func(c echo.Context) error {
		handlerRan = true
		return c.NoContent(http.StatusOK)
	}

	mw := RequireSession(&fakeStore{active: false}, "/admin/login")
	if err := mw(next)(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}

	if handlerRan {
		t.Fatal("protected handler must not run without a session")
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/admin/login" {
		t.Fatalf("redirect target = %q", loc)
	}
}

func TestRequireSession_PassesWithSession(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var handlerRan bool
	next := func(c echo.Context) error {
		handlerRan = true
		return c.NoContent(http.StatusOK)
	}

	mw := RequireSession(&fakeStore{active: true}, "/admin/login")
	if err := mw(next)(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}

	if !handlerRan {
		t.Fatal("protected handler must run with an active session")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
