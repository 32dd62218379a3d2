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

const bookingsCollection = "bookings"

// BookingRepository implements ports.BookingRepository using MongoDB.
type BookingRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{db: db, coll: db.Collection(bookingsCollection)}
}

type mongoBooking struct {
	ID              int64     `bson:"_id"`
	CustomerName    string    `bson:"customer_name"`
	CustomerEmail   string    `bson:"customer_email"`
	CustomerPhone   string    `bson:"customer_phone"`
	BookingDate     string    `bson:"booking_date"`
	BookingTime     string    `bson:"booking_time"`
	PartySize       int       `bson:"party_size"`
	SpecialRequests string    `bson:"special_requests,omitempty"`
	CreatedAt       time.Time `bson:"created_at"`
}

// Create inserts the booking and assigns its integer id.
func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, bookingsCollection)
	if err != nil {
		return err
	}

	doc := mongoBooking{
		ID:              id,
		CustomerName:    booking.CustomerName,
		CustomerEmail:   booking.CustomerEmail,
		CustomerPhone:   booking.CustomerPhone,
		BookingDate:     booking.BookingDate,
		BookingTime:     booking.BookingTime,
		PartySize:       booking.PartySize,
		SpecialRequests: booking.SpecialRequests,
		CreatedAt:       booking.CreatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	booking.ID = id
	return nil
}

// List returns all bookings, newest first.
func (r *BookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoBooking
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}

	out := make([]domain.Booking, len(docs))
	for i, d := range docs {
		out[i] = domain.Booking{
			ID:              d.ID,
			CustomerName:    d.CustomerName,
			CustomerEmail:   d.CustomerEmail,
			CustomerPhone:   d.CustomerPhone,
			BookingDate:     d.BookingDate,
			BookingTime:     d.BookingTime,
			PartySize:       d.PartySize,
			SpecialRequests: d.SpecialRequests,
			CreatedAt:       d.CreatedAt,
		}
	}
	return out, nil
}

func (r *BookingRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{})
}
