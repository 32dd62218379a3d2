package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ypamc/restaurant-backend/internal/core/domain"
	"github.com/ypamc/restaurant-backend/internal/token"
)

// userContextKey is where Auth stores the verified identity snapshot.
const userContextKey = "auth_user"

// Auth validates the bearer token and injects the embedded user snapshot
// into the request context. Expired and otherwise-invalid tokens both yield
// 401, with distinct messages so clients can tell a re-login is needed.
func Auth(tokens *token.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				if err == token.ErrExpired {
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(userContextKey, claims.User)
			return next(c)
		}
	}
}

// UserFromContext returns the snapshot injected by Auth. The second return
// is false when Auth did not run on this request.
func UserFromContext(c echo.Context) (domain.Snapshot, bool) {
	user, ok := c.Get(userContextKey).(domain.Snapshot)
	return user, ok
}
