package ports

import (
	"context"

	"github.com/ypamc/restaurant-backend/internal/core/domain"
)

// CreateBookingInput carries a validated booking submission.
type CreateBookingInput struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	BookingDate     string
	BookingTime     string
	PartySize       int
	SpecialRequests string
}

// BookingRepository persists bookings. Create assigns the ID and CreatedAt.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	// List returns all bookings, newest first.
	List(ctx context.Context) ([]domain.Booking, error)
	Count(ctx context.Context) (int64, error)
}

type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
}
