package booking

import (
	"context"

	bookingRepo "doctorsportal/database/repository/booking"
	paymentRepo "doctorsportal/database/repository/payment"
	"doctorsportal/models"
	"doctorsportal/services/payment"

	"go.uber.org/zap"
)

// AdmissionStatus discriminates the outcome of Admit.
type AdmissionStatus int

const (
	// AdmissionAccepted means the booking was stored.
	AdmissionAccepted AdmissionStatus = iota + 1
	// AdmissionConflict means the patient already holds a booking for the
	// same treatment and date; nothing was stored.
	AdmissionConflict
)

func (s AdmissionStatus) String() string {
	switch s {
	case AdmissionAccepted:
		return "accepted"
	case AdmissionConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Admission is the result of Admit. Booking is the stored booking when
// accepted and the pre-existing one on conflict.
type Admission struct {
	Status  AdmissionStatus
	Booking *models.Booking
}

// Accepted reports whether the candidate was stored.
func (a Admission) Accepted() bool {
	return a.Status == AdmissionAccepted
}

// BookingService defines booking admission, lookup and payment confirmation.
type BookingService interface {
	Admit(ctx context.Context, candidate models.Booking) (Admission, error)
	ListForPatient(ctx context.Context, requesterEmail, patientEmail string) ([]models.Booking, error)
	GetByID(ctx context.Context, requesterEmail, id string) (*models.Booking, error)
	ConfirmPayment(ctx context.Context, requesterEmail, id string, confirmation models.PaymentConfirmation) (*models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Payments paymentRepo.PaymentRepository
	Gateway  payment.Gateway
	Logger   *zap.Logger
}
