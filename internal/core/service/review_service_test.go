package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ypamc/restaurant-backend/internal/core/domain"
	"github.com/ypamc/restaurant-backend/internal/core/ports"
)

type stubReviewRepo struct {
	reviews []domain.Review
}

func (r *stubReviewRepo) Create(_ context.Context, rev *domain.Review) error {
	rev.ID = int64(len(r.reviews) + 1)
	r.reviews = append(r.reviews, *rev)
	return nil
}

func (r *stubReviewRepo) List(_ context.Context) ([]domain.Review, error) {
	out := make([]domain.Review, len(r.reviews))
	for i := range r.reviews {
		out[len(out)-1-i] = r.reviews[i]
	}
	return out, nil
}

func (r *stubReviewRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.reviews)), nil
}

func TestReviewService_Create_PersistsAndNotifies(t *testing.T) {
	repo := &stubReviewRepo{}
	notifier := &recordingNotifier{}
	svc := NewReviewService(repo, notifier, zerolog.Nop())

	review, err := svc.Create(context.Background(), ports.CreateReviewInput{
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
		Rating:        5,
		Comment:       "Best mbuzi in town",
		MenuID:        12,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if review.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if len(repo.reviews) != 1 {
		t.Fatalf("expected persisted review")
	}
	if len(notifier.reviews) != 1 || notifier.reviews[0].Rating != 5 {
		t.Fatalf("notifier not called with persisted review")
	}
}
