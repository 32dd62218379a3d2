package ports

import (
	"context"

	"github.com/ypamc/restaurant-backend/internal/core/domain"
)

// AuthRepository defines the interface for staff user persistence.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
