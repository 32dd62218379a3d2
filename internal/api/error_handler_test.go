package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ypamc/restaurant-backend/internal/api/handler"
	"github.com/ypamc/restaurant-backend/internal/core/domain"
	"github.com/ypamc/restaurant-backend/internal/core/ports"
)

func render(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec.Code, strings.TrimSpace(rec.Body.String())
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
		body string
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, `{"error":"invalid credentials"}`},
		{domain.ErrEmailTaken, http.StatusBadRequest, `{"error":"email already registered"}`},
		{domain.ErrUserNotFound, http.StatusNotFound, `{"error":"user not found"}`},
		{domain.ErrDuplicateSubmission, http.StatusConflict, `{"error":"duplicate submission"}`},
		{echo.NewHTTPError(http.StatusForbidden, "insufficient role"), http.StatusForbidden, `{"error":"insufficient role"}`},
		{errors.New("driver exploded"), http.StatusInternalServerError, `{"error":"internal server error"}`},
	}

	for _, tc := range cases {
		code, body := render(t, tc.err)
		if code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
		if body != tc.body {
			t.Fatalf("%v: expected body %s, got %s", tc.err, tc.body, body)
		}
	}
}

type fixedLoginService struct{}

func (fixedLoginService) Register(context.Context, ports.RegisterInput) (*domain.User, error) {
	return nil, domain.ErrInvalidCredentials
}

func (fixedLoginService) Login(_ context.Context, username, _ string) (string, *domain.User, error) {
	// Mirrors the real service: unknown user and wrong password collapse
	// into the same error before it ever reaches the transport layer.
	return "", nil, domain.ErrInvalidCredentials
}

// Login failures must be byte-identical whether the username exists or not.
func TestErrorHandler_LoginFailuresIndistinguishable(t *testing.T) {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.POST("/auth/login", handler.NewAuthHandler(fixedLoginService{}).Login)

	responses := make([]string, 0, 2)
	codes := make([]int, 0, 2)
	for _, body := range []string{
		`{"username":"existing-user","password":"wrong-password"}`,
		`{"username":"no-such-user","password":"whatever"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		responses = append(responses, rec.Body.String())
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusUnauthorized || codes[1] != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %v", codes)
	}
	if responses[0] != responses[1] {
		t.Fatalf("login failure responses differ: %q vs %q", responses[0], responses[1])
	}
}
