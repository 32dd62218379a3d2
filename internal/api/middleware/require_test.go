package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ypamc/restaurant-backend/internal/core/domain"
)

func guardContext(user *domain.Snapshot) (echo.Context, *httptest.ResponseRecorder, *echo.Echo) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(userContextKey, *user)
	}
	return c, rec, e
}

func runGuard(t *testing.T, guard echo.MiddlewareFunc, user *domain.Snapshot) (int, bool) {
	t.Helper()
	c, rec, e := guardContext(user)

	called := false
	handler := guard(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec.Code, called
}

func TestRequireRecordsAdmin_Allows(t *testing.T) {
	code, called := runGuard(t, RequireRecordsAdmin(), &domain.Snapshot{ID: 4, Role: domain.RoleRecords, IsAdmin: true})
	if !called || code != http.StatusOK {
		t.Fatalf("expected pass, got code=%d called=%v", code, called)
	}
}

func TestRequireRecordsAdmin_ForbidsNonAdmin(t *testing.T) {
	// Validly signed identity with the right role but no admin flag.
	code, called := runGuard(t, RequireRecordsAdmin(), &domain.Snapshot{ID: 3, Role: domain.RoleRecords, IsAdmin: false})
	if called {
		t.Fatalf("handler reached despite failed predicate")
	}
	if code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}

func TestRequireFinanceAdmin_ForbidsWrongRole(t *testing.T) {
	code, called := runGuard(t, RequireFinanceAdmin(), &domain.Snapshot{ID: 5, Role: domain.RoleRecords, IsAdmin: true})
	if called || code != http.StatusForbidden {
		t.Fatalf("expected 403, got code=%d called=%v", code, called)
	}
}

func TestRequireAnyAdmin_AllowsEveryAdminRole(t *testing.T) {
	for _, role := range []string{domain.RoleAdmin, domain.RoleFinance, domain.RoleRecords} {
		code, called := runGuard(t, RequireAnyAdmin(), &domain.Snapshot{ID: 1, Role: role, IsAdmin: true})
		if !called || code != http.StatusOK {
			t.Fatalf("role %s: expected pass, got code=%d called=%v", role, code, called)
		}
	}
}

func TestRequire_MissingClaims(t *testing.T) {
	code, called := runGuard(t, RequireAnyAdmin(), nil)
	if called {
		t.Fatalf("handler reached without claims")
	}
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}
