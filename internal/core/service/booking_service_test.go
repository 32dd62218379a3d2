package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ypamc/restaurant-backend/internal/core/domain"
	"github.com/ypamc/restaurant-backend/internal/core/ports"
)

type stubBookingRepo struct {
	bookings []domain.Booking
	failWith error
}

func (r *stubBookingRepo) Create(_ context.Context, b *domain.Booking) error {
	if r.failWith != nil {
		return r.failWith
	}
	b.ID = int64(len(r.bookings) + 1)
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *stubBookingRepo) List(_ context.Context) ([]domain.Booking, error) {
	out := make([]domain.Booking, len(r.bookings))
	for i := range r.bookings {
		out[len(out)-1-i] = r.bookings[i]
	}
	return out, nil
}

func (r *stubBookingRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.bookings)), nil
}

type stubGuard struct {
	marked  map[string]bool
	failing bool
}

func newStubGuard() *stubGuard { return &stubGuard{marked: make(map[string]bool)} }

func (g *stubGuard) Seen(_ context.Context, key string) (bool, error) {
	if g.failing {
		return false, errors.New("guard down")
	}
	return g.marked[key], nil
}

func (g *stubGuard) Mark(_ context.Context, key string) error {
	if g.failing {
		return errors.New("guard down")
	}
	g.marked[key] = true
	return nil
}

type recordingNotifier struct {
	bookings []*domain.Booking
	contacts []*domain.Contact
	reviews  []*domain.Review
}

func (n *recordingNotifier) BookingCreated(_ context.Context, b *domain.Booking) {
	n.bookings = append(n.bookings, b)
}

func (n *recordingNotifier) ContactReceived(_ context.Context, c *domain.Contact) {
	n.contacts = append(n.contacts, c)
}

func (n *recordingNotifier) ReviewReceived(_ context.Context, r *domain.Review) {
	n.reviews = append(n.reviews, r)
}

func sampleBookingInput() ports.CreateBookingInput {
	return ports.CreateBookingInput{
		CustomerName:  "Jane",
		CustomerEmail: "jane@example.com",
		CustomerPhone: "+254700000000",
		BookingDate:   "2026-09-12",
		BookingTime:   "19:00",
		PartySize:     4,
	}
}

func TestBookingService_Create_PersistsAndNotifies(t *testing.T) {
	repo := &stubBookingRepo{}
	notifier := &recordingNotifier{}
	svc := NewBookingService(repo, newStubGuard(), notifier, zerolog.Nop())

	booking, err := svc.Create(context.Background(), sampleBookingInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if booking.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if len(repo.bookings) != 1 {
		t.Fatalf("expected 1 persisted booking, got %d", len(repo.bookings))
	}
	if len(notifier.bookings) != 1 || notifier.bookings[0].ID != booking.ID {
		t.Fatalf("notifier not called with persisted booking")
	}
}

func TestBookingService_Create_DuplicateRejectedBeforeWrite(t *testing.T) {
	repo := &stubBookingRepo{}
	guard := newStubGuard()
	notifier := &recordingNotifier{}
	svc := NewBookingService(repo, guard, notifier, zerolog.Nop())

	if _, err := svc.Create(context.Background(), sampleBookingInput()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	if _, err := svc.Create(context.Background(), sampleBookingInput()); err != domain.ErrDuplicateSubmission {
		t.Fatalf("expected ErrDuplicateSubmission, got %v", err)
	}
	if len(repo.bookings) != 1 {
		t.Fatalf("duplicate reached the repository")
	}
	if len(notifier.bookings) != 1 {
		t.Fatalf("duplicate triggered notifications")
	}
}

func TestBookingService_Create_GuardOutageAllowsWrite(t *testing.T) {
	repo := &stubBookingRepo{}
	svc := NewBookingService(repo, &stubGuard{failing: true}, &recordingNotifier{}, zerolog.Nop())

	if _, err := svc.Create(context.Background(), sampleBookingInput()); err != nil {
		t.Fatalf("guard outage must not block the write: %v", err)
	}
	if len(repo.bookings) != 1 {
		t.Fatalf("expected booking persisted during guard outage")
	}
}

func TestBookingService_Create_RepoFailureSkipsNotification(t *testing.T) {
	repoErr := errors.New("write failed")
	notifier := &recordingNotifier{}
	svc := NewBookingService(&stubBookingRepo{failWith: repoErr}, newStubGuard(), notifier, zerolog.Nop())

	if _, err := svc.Create(context.Background(), sampleBookingInput()); !errors.Is(err, repoErr) {
		t.Fatalf("expected repo error, got %v", err)
	}
	if len(notifier.bookings) != 0 {
		t.Fatalf("notification fired for an uncommitted booking")
	}
}
