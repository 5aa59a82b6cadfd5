package bookingRepo

import (
	"context"
	"errors"

	"doctorsportal/models"
)

var (
	// ErrNotFound is returned when a booking lookup by ID matches nothing.
	ErrNotFound = errors.New("booking not found")
	// ErrDuplicateTransaction is returned when a transaction id is already on another booking.
	ErrDuplicateTransaction = errors.New("transaction already recorded")
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// FetchByDate returns every booking whose date equals the given label.
	FetchByDate(ctx context.Context, date string) ([]models.Booking, error)
	// FetchByKey returns the booking for (treatment, date, patient), or nil if none exists.
	FetchByKey(ctx context.Context, treatment, date, patientEmail string) (*models.Booking, error)
	// Insert stores the booking, assigning it an identifier.
	Insert(ctx context.Context, booking models.Booking) (*models.Booking, error)
	// GetByID returns a booking or ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// ListByPatient returns every booking made by the patient.
	ListByPatient(ctx context.Context, patientEmail string) ([]models.Booking, error)
	// MarkPaid sets paid=true and the transaction id. Returns ErrNotFound if nothing
	// matched and ErrDuplicateTransaction if another booking holds the transaction.
	MarkPaid(ctx context.Context, id, transactionID string) (*models.Booking, error)
}
