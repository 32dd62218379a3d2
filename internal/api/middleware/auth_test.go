package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ypamc/restaurant-backend/internal/core/domain"
	"github.com/ypamc/restaurant-backend/internal/token"
)

func testContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder, *echo.Echo) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec, e
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := token.NewManager("secret", time.Hour)
	signed, err := tokens.Issue(domain.Snapshot{ID: 7, Username: "alice", Role: domain.RoleFinance, IsAdmin: true})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, rec, _ := testContext(t, "Bearer "+signed)

	called := false
	handler := Auth(tokens)(func(c echo.Context) error {
		called = true
		user, ok := UserFromContext(c)
		if !ok {
			t.Fatalf("snapshot not injected")
		}
		if user.ID != 7 || user.Username != "alice" || user.Role != domain.RoleFinance || !user.IsAdmin {
			t.Fatalf("unexpected snapshot: %+v", user)
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

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokens := token.NewManager("secret", time.Hour)
	c, rec, e := testContext(t, "")

	handler := Auth(tokens)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	issuer := token.NewManager("secret", time.Nanosecond)
	signed, err := issuer.Issue(domain.Snapshot{ID: 7, Username: "alice", Role: domain.RoleFinance, IsAdmin: true})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	c, rec, e := testContext(t, "Bearer "+signed)

	handler := Auth(token.NewManager("secret", time.Hour))(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err = handler(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Message != "token expired" {
		t.Fatalf("expected expiry reason, got %v", err)
	}
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	foreign := token.NewManager("other-secret", time.Hour)
	signed, err := foreign.Issue(domain.Snapshot{ID: 1, Username: "bob"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, rec, e := testContext(t, "Bearer "+signed)

	handler := Auth(token.NewManager("secret", time.Hour))(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	c, rec, e := testContext(t, "Token abc")

	handler := Auth(token.NewManager("secret", time.Hour))(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
