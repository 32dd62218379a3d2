package ports

import (
	"context"

	"github.com/ypamc/restaurant-backend/internal/core/domain"
)

// RegisterInput carries the data needed to create a staff account.
// Username is optional; when empty one is derived from the first name.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Username  string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login returns a signed bearer token alongside the authenticated user.
	// Unknown username and wrong password both fail with ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
