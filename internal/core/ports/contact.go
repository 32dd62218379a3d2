package ports

import (
	"context"

	"github.com/ypamc/restaurant-backend/internal/core/domain"
)

// CreateContactInput carries a validated contact form submission.
type CreateContactInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) error
	List(ctx context.Context) ([]domain.Contact, error)
	Count(ctx context.Context) (int64, error)
}

type ContactService interface {
	Create(ctx context.Context, input CreateContactInput) (*domain.Contact, error)
	List(ctx context.Context) ([]domain.Contact, error)
}
