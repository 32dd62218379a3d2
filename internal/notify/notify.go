// Package notify turns committed business records into the pair of emails
// every submission triggers: a confirmation to the customer and a heads-up
// to the administrator address. Delivery failures are logged and counted but
// never propagated, so a mail-relay outage cannot fail or roll back the
// write that triggered the notification.
package notify

import (
	"bytes"
	"context"
	"text/template"

	"github.com/rs/zerolog"

	"github.com/ypamc/restaurant-backend/internal/api/metrics"
	"github.com/ypamc/restaurant-backend/internal/core/domain"
	"github.com/ypamc/restaurant-backend/internal/core/ports"
)

// Notifier implements ports.Notifier on top of a MailSender.
type Notifier struct {
	sender     ports.MailSender
	adminEmail string
	restaurant string
	logger     zerolog.Logger
}

// New returns a Notifier delivering through sender. adminEmail is the fixed
// administrator recipient; restaurant is the display name used in message
// bodies and subjects.
func New(sender ports.MailSender, adminEmail, restaurant string, logger zerolog.Logger) *Notifier {
	return &Notifier{
		sender:     sender,
		adminEmail: adminEmail,
		restaurant: restaurant,
		logger:     logger,
	}
}

// BookingCreated sends the booking confirmation to the customer and the
// booking notification to the admin. The two sends are independent: a
// failure in the first does not prevent the second.
func (n *Notifier) BookingCreated(ctx context.Context, booking *domain.Booking) {
	data := struct {
		Booking    *domain.Booking
		Restaurant string
	}{booking, n.restaurant}

	n.send(ctx, "booking_customer", booking.CustomerEmail,
		"Your Booking Confirmation - "+n.restaurant, bookingCustomerBody, data)
	n.send(ctx, "booking_admin", n.adminEmail,
		"New Booking Received", bookingAdminBody, data)
}

// ContactReceived sends the contact acknowledgement and admin notification.
func (n *Notifier) ContactReceived(ctx context.Context, contact *domain.Contact) {
	data := struct {
		Contact    *domain.Contact
		Restaurant string
	}{contact, n.restaurant}

	n.send(ctx, "contact_customer", contact.Email,
		"We Received Your Message - "+n.restaurant, contactCustomerBody, data)
	n.send(ctx, "contact_admin", n.adminEmail,
		"New Contact Form Submission", contactAdminBody, data)
}

// ReviewReceived sends the review thank-you and admin notification.
func (n *Notifier) ReviewReceived(ctx context.Context, review *domain.Review) {
	data := struct {
		Review     *domain.Review
		Restaurant string
	}{review, n.restaurant}

	n.send(ctx, "review_customer", review.CustomerEmail,
		"Thank You for Your Review - "+n.restaurant, reviewCustomerBody, data)
	n.send(ctx, "review_admin", n.adminEmail,
		"New Customer Review", reviewAdminBody, data)
}

// send renders one template and performs a single delivery attempt.
func (n *Notifier) send(ctx context.Context, name, to, subject string, tmpl *template.Template, data any) {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		metrics.EmailsTotal.WithLabelValues(name, "failed").Inc()
		n.logger.Error().Err(err).Str("template", name).Msg("failed to render email")
		return
	}

	if err := n.sender.Send(ctx, to, subject, body.String()); err != nil {
		metrics.EmailsTotal.WithLabelValues(name, "failed").Inc()
		n.logger.Error().Err(err).Str("template", name).Str("to", to).Msg("failed to send email")
		return
	}

	metrics.EmailsTotal.WithLabelValues(name, "sent").Inc()
	n.logger.Debug().Str("template", name).Str("to", to).Msg("email sent")
}
