package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ypamc/restaurant-backend/internal/core/domain"
)

const contactsCollection = "contacts"

// ContactRepository implements ports.ContactRepository using MongoDB.
type ContactRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{db: db, coll: db.Collection(contactsCollection)}
}

type mongoContact struct {
	ID        int64     `bson:"_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Phone     string    `bson:"phone,omitempty"`
	Subject   string    `bson:"subject"`
	Message   string    `bson:"message"`
	CreatedAt time.Time `bson:"created_at"`
}

func (r *ContactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, contactsCollection)
	if err != nil {
		return err
	}

	doc := mongoContact{
		ID:        id,
		Name:      contact.Name,
		Email:     contact.Email,
		Phone:     contact.Phone,
		Subject:   contact.Subject,
		Message:   contact.Message,
		CreatedAt: contact.CreatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}

	contact.ID = id
	return nil
}

func (r *ContactRepository) List(ctx context.Context) ([]domain.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoContact
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode contacts: %w", err)
	}

	out := make([]domain.Contact, len(docs))
	for i, d := range docs {
		out[i] = domain.Contact{
			ID:        d.ID,
			Name:      d.Name,
			Email:     d.Email,
			Phone:     d.Phone,
			Subject:   d.Subject,
			Message:   d.Message,
			CreatedAt: d.CreatedAt,
		}
	}
	return out, nil
}

func (r *ContactRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{})
}
