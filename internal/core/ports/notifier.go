package ports

import (
	"context"

	"github.com/ypamc/restaurant-backend/internal/core/domain"
)

// MailSender delivers a single message to a single recipient over the
// configured mail relay. One authenticated session per call, at most one
// delivery attempt.
type MailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Notifier fires the customer confirmation and admin notification emails
// for a committed business record. Implementations must attempt both sends
// independently and must never fail the caller: delivery errors are logged
// and counted, not propagated.
type Notifier interface {
	BookingCreated(ctx context.Context, booking *domain.Booking)
	ContactReceived(ctx context.Context, contact *domain.Contact)
	ReviewReceived(ctx context.Context, review *domain.Review)
}
