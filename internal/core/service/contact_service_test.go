package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ypamc/restaurant-backend/internal/core/domain"
	"github.com/ypamc/restaurant-backend/internal/core/ports"
)

type stubContactRepo struct {
	contacts []domain.Contact
}

func (r *stubContactRepo) Create(_ context.Context, c *domain.Contact) error {
	c.ID = int64(len(r.contacts) + 1)
	r.contacts = append(r.contacts, *c)
	return nil
}

func (r *stubContactRepo) List(_ context.Context) ([]domain.Contact, error) {
	out := make([]domain.Contact, len(r.contacts))
	for i := range r.contacts {
		out[len(out)-1-i] = r.contacts[i]
	}
	return out, nil
}

func (r *stubContactRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.contacts)), nil
}

func TestContactService_Create_PersistsAndNotifies(t *testing.T) {
	repo := &stubContactRepo{}
	notifier := &recordingNotifier{}
	svc := NewContactService(repo, notifier, zerolog.Nop())

	contact, err := svc.Create(context.Background(), ports.CreateContactInput{
		Name:    "Sam",
		Email:   "sam@example.com",
		Subject: "Opening hours",
		Message: "Are you open on Sundays?",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if contact.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if len(notifier.contacts) != 1 {
		t.Fatalf("expected contact notification")
	}
}

func TestContactService_List_NewestFirst(t *testing.T) {
	repo := &stubContactRepo{}
	svc := NewContactService(repo, &recordingNotifier{}, zerolog.Nop())

	_, _ = svc.Create(context.Background(), ports.CreateContactInput{Name: "First", Email: "a@example.com", Subject: "a", Message: "m"})
	_, _ = svc.Create(context.Background(), ports.CreateContactInput{Name: "Second", Email: "b@example.com", Subject: "b", Message: "m"})

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 2 || list[0].Name != "Second" {
		t.Fatalf("expected newest first, got %+v", list)
	}
}
