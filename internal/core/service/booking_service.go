package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ypamc/restaurant-backend/internal/api/metrics"
	"github.com/ypamc/restaurant-backend/internal/core/domain"
	"github.com/ypamc/restaurant-backend/internal/core/ports"
)

// BookingService implements the booking submission flow: duplicate guard,
// persist, then fire the two notification emails.
type BookingService struct {
	repo     ports.BookingRepository
	guard    ports.SubmissionGuard
	notifier ports.Notifier
	logger   zerolog.Logger
}

func NewBookingService(repo ports.BookingRepository, guard ports.SubmissionGuard, notifier ports.Notifier, logger zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, guard: guard, notifier: notifier, logger: logger}
}

// Create persists a booking and notifies customer and admin. Notification
// failures never roll back the write; they are handled inside the notifier.
// A repeated identical submission within the guard TTL is rejected before
// the write. Guard outages degrade to allowing the write.
func (s *BookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	key := submissionKey(input)
	seen, err := s.guard.Seen(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Msg("submission guard unavailable, allowing write")
	} else if seen {
		metrics.SubmissionsRejectedTotal.WithLabelValues("duplicate").Inc()
		return nil, domain.ErrDuplicateSubmission
	}

	booking := &domain.Booking{
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		BookingDate:     input.BookingDate,
		BookingTime:     input.BookingTime,
		PartySize:       input.PartySize,
		SpecialRequests: input.SpecialRequests,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.logger.Error().Err(err).Msg("failed to create booking")
		return nil, err
	}

	if err := s.guard.Mark(ctx, key); err != nil {
		s.logger.Warn().Err(err).Msg("failed to mark submission")
	}

	metrics.SubmissionsTotal.WithLabelValues("booking").Inc()
	s.logger.Info().Int64("booking_id", booking.ID).Str("date", booking.BookingDate).Int("party_size", booking.PartySize).Msg("booking created")

	s.notifier.BookingCreated(ctx, booking)
	return booking, nil
}

// List returns all bookings, newest first.
func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.repo.List(ctx)
}

// submissionKey identifies a booking for the double-submit guard: same
// customer, same slot.
func submissionKey(input ports.CreateBookingInput) string {
	return fmt.Sprintf("%s:%s:%s", input.CustomerEmail, input.BookingDate, input.BookingTime)
}
