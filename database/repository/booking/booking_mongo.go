package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"doctorsportal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a booking repository over the "bookings" collection.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	repo := &MongoBookingRepo{coll: db.Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

// idFilter matches both string ids and legacy ObjectId ids.
func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": bson.M{"$in": bson.A{id, oid}}}
	}
	return bson.M{"_id": id}
}

func (r *MongoBookingRepo) findMany(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// FetchByDate returns every booking on the given date label.
func (r *MongoBookingRepo) FetchByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return r.findMany(ctx, bson.M{"date": date})
}

// ListByPatient returns every booking for the patient email.
func (r *MongoBookingRepo) ListByPatient(ctx context.Context, patientEmail string) ([]models.Booking, error) {
	return r.findMany(ctx, bson.M{"patient": patientEmail})
}

// FetchByKey returns the booking matching (treatment, date, patient), or nil.
func (r *MongoBookingRepo) FetchByKey(ctx context.Context, treatment, date, patientEmail string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"treatment": treatment, "date": date, "patient": patientEmail}
	var booking models.Booking
	if err := r.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching booking for %s on %s: %w", treatment, date, err)
	}
	return &booking, nil
}

// Insert stores a new booking with a fresh UUID identifier.
func (r *MongoBookingRepo) Insert(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	booking.ID = uuid.New().String()
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return nil, fmt.Errorf("error creating booking: %w", err)
	}
	return &booking, nil
}

// GetByID returns a booking by identifier.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, idFilter(id)).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// MarkPaid records the transaction on the booking and returns the updated document.
func (r *MongoBookingRepo) MarkPaid(ctx context.Context, id, transactionID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"paid": true, "transactionId": transactionID}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking models.Booking
	if err := r.coll.FindOneAndUpdate(ctx, idFilter(id), update, opts).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateTransaction
		}
		return nil, fmt.Errorf("error updating booking %s: %w", id, err)
	}
	return &booking, nil
}
