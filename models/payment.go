package models

import "time"

// Payment records a confirmed payment against a booking.
type Payment struct {
	ID            string    `bson:"_id" json:"_id"`
	BookingID     string    `bson:"booking" json:"booking"`
	TransactionID string    `bson:"transactionId" json:"transactionId"`
	Amount        float64   `bson:"amount,omitempty" json:"amount,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// PaymentIntentRequest is the body of POST /create-payment-intent.
type PaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required"`
}

// PaymentConfirmation is the body of PATCH /booking/:id. TransactionID is
// the gateway's payment intent id.
type PaymentConfirmation struct {
	TransactionID string `json:"transactionId" binding:"required"`
}
