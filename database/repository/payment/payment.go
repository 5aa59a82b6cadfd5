package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentRepository records confirmed payments.
type PaymentRepository interface {
	Create(ctx context.Context, payment models.Payment) (*models.Payment, error)
}

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo creates a payment repository over the "payments" collection.
func NewMongoPaymentRepo(db *mongo.Database) PaymentRepository {
	return &MongoPaymentRepo{coll: db.Collection("payments")}
}

// Create inserts a payment record with a fresh id and timestamp.
func (r *MongoPaymentRepo) Create(ctx context.Context, payment models.Payment) (*models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	payment.ID = uuid.New().String()
	payment.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to record payment for booking %s: %w", payment.BookingID, err)
	}
	return &payment, nil
}
