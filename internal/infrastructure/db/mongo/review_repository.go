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

const reviewsCollection = "reviews"

// ReviewRepository implements ports.ReviewRepository using MongoDB.
type ReviewRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{db: db, coll: db.Collection(reviewsCollection)}
}

type mongoReview struct {
	ID            int64     `bson:"_id"`
	CustomerName  string    `bson:"customer_name"`
	CustomerEmail string    `bson:"customer_email"`
	Rating        int       `bson:"rating"`
	Comment       string    `bson:"comment,omitempty"`
	MenuID        int64     `bson:"menu_id"`
	CreatedAt     time.Time `bson:"created_at"`
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, reviewsCollection)
	if err != nil {
		return err
	}

	doc := mongoReview{
		ID:            id,
		CustomerName:  review.CustomerName,
		CustomerEmail: review.CustomerEmail,
		Rating:        review.Rating,
		Comment:       review.Comment,
		MenuID:        review.MenuID,
		CreatedAt:     review.CreatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert review: %w", err)
	}

	review.ID = id
	return nil
}

func (r *ReviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoReview
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}

	out := make([]domain.Review, len(docs))
	for i, d := range docs {
		out[i] = domain.Review{
			ID:            d.ID,
			CustomerName:  d.CustomerName,
			CustomerEmail: d.CustomerEmail,
			Rating:        d.Rating,
			Comment:       d.Comment,
			MenuID:        d.MenuID,
			CreatedAt:     d.CreatedAt,
		}
	}
	return out, nil
}

func (r *ReviewRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{})
}
