package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ypamc/restaurant-backend/internal/api/metrics"
	"github.com/ypamc/restaurant-backend/internal/core/domain"
	"github.com/ypamc/restaurant-backend/internal/core/ports"
)

// ReviewService implements the review submission flow.
type ReviewService struct {
	repo     ports.ReviewRepository
	notifier ports.Notifier
	logger   zerolog.Logger
}

func NewReviewService(repo ports.ReviewRepository, notifier ports.Notifier, logger zerolog.Logger) *ReviewService {
	return &ReviewService{repo: repo, notifier: notifier, logger: logger}
}

// Create persists a review and notifies customer and admin.
func (s *ReviewService) Create(ctx context.Context, input ports.CreateReviewInput) (*domain.Review, error) {
	review := &domain.Review{
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		Rating:        input.Rating,
		Comment:       input.Comment,
		MenuID:        input.MenuID,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, review); err != nil {
		s.logger.Error().Err(err).Msg("failed to create review")
		return nil, err
	}

	metrics.SubmissionsTotal.WithLabelValues("review").Inc()
	s.logger.Info().Int64("review_id", review.ID).Int("rating", review.Rating).Msg("review received")

	s.notifier.ReviewReceived(ctx, review)
	return review, nil
}

// List returns all reviews, newest first.
func (s *ReviewService) List(ctx context.Context) ([]domain.Review, error) {
	return s.repo.List(ctx)
}
