package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/openplate/foodshare-api/internal/core/service"
)

func newGuardContext(t *testing.T, cookie *http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	signed, _, err := tokens.Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, rec := newGuardContext(t, &http.Cookie{Name: TokenCookie, Value: signed})

	called := false
	handler := Auth(tokens)(func(c echo.Context) error {
		called = true
		if c.Get(ClaimEmailKey) != "a@x.com" {
			t.Fatalf("claim email not set, got %v", c.Get(ClaimEmailKey))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingCookie(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	c, _ := newGuardContext(t, nil)

	handler := Auth(tokens)(func(c echo.Context) error {
		t.Fatalf("next should not be called")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	forged, _, err := service.NewTokenService("other", time.Hour).Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, _ := newGuardContext(t, &http.Cookie{Name: TokenCookie, Value: forged})

	handler := Auth(tokens)(func(c echo.Context) error {
		t.Fatalf("next should not be called")
		return nil
	})

	err = handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	issuer := service.NewTokenService("secret", time.Millisecond)
	signed, _, err := issuer.Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	c, _ := newGuardContext(t, &http.Cookie{Name: TokenCookie, Value: signed})

	handler := Auth(issuer)(func(c echo.Context) error {
		t.Fatalf("next should not be called")
		return nil
	})

	err = handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %v", err)
	}
}
