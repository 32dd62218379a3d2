package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ypamc/restaurant-backend/internal/core/domain"
)

// Require builds a guard enforcing a role predicate against the snapshot
// injected by Auth. Each protected route family declares its own guard at
// the registration site, so the required role is visible at the boundary.
// An empty role matches any role; requireAdmin demands the is_admin flag.
func Require(role string, requireAdmin bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := UserFromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if !user.Satisfies(role, requireAdmin) {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}

// RequireRecordsAdmin guards resources managed by the records office.
func RequireRecordsAdmin() echo.MiddlewareFunc {
	return Require(domain.RoleRecords, true)
}

// RequireFinanceAdmin guards revenue-bearing resources.
func RequireFinanceAdmin() echo.MiddlewareFunc {
	return Require(domain.RoleFinance, true)
}

// RequireAnyAdmin guards resources open to any authenticated admin,
// regardless of role.
func RequireAnyAdmin() echo.MiddlewareFunc {
	return Require("", true)
}
