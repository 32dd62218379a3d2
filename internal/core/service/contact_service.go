package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ypamc/restaurant-backend/internal/api/metrics"
	"github.com/ypamc/restaurant-backend/internal/core/domain"
	"github.com/ypamc/restaurant-backend/internal/core/ports"
)

// ContactService implements the contact form flow.
type ContactService struct {
	repo     ports.ContactRepository
	notifier ports.Notifier
	logger   zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, notifier ports.Notifier, logger zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, notifier: notifier, logger: logger}
}

// Create persists a contact message and notifies customer and admin.
func (s *ContactService) Create(ctx context.Context, input ports.CreateContactInput) (*domain.Contact, error) {
	contact := &domain.Contact{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Subject:   input.Subject,
		Message:   input.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		s.logger.Error().Err(err).Msg("failed to create contact")
		return nil, err
	}

	metrics.SubmissionsTotal.WithLabelValues("contact").Inc()
	s.logger.Info().Int64("contact_id", contact.ID).Str("subject", contact.Subject).Msg("contact received")

	s.notifier.ContactReceived(ctx, contact)
	return contact, nil
}

// List returns all contact messages, newest first.
func (s *ContactService) List(ctx context.Context) ([]domain.Contact, error) {
	return s.repo.List(ctx)
}
