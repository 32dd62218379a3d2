package ports

import (
	"context"

	"github.com/ypamc/restaurant-backend/internal/core/domain"
)

// CreateReviewInput carries a validated review submission.
type CreateReviewInput struct {
	CustomerName  string
	CustomerEmail string
	Rating        int
	Comment       string
	MenuID        int64
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	List(ctx context.Context) ([]domain.Review, error)
	Count(ctx context.Context) (int64, error)
}

type ReviewService interface {
	Create(ctx context.Context, input CreateReviewInput) (*domain.Review, error)
	List(ctx context.Context) ([]domain.Review, error)
}
