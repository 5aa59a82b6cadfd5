package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"
)

// ListForPatient returns the patient's bookings. Requesters may only list their own.
func (s *DefaultBookingService) ListForPatient(ctx context.Context, requesterEmail, patientEmail string) ([]models.Booking, error) {
	if requesterEmail == "" || requesterEmail != patientEmail {
		return nil, ErrForbidden
	}
	bookings, err := s.Repo.ListByPatient(ctx, patientEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// GetByID fetches a single booking owned by the requester.
func (s *DefaultBookingService) GetByID(ctx context.Context, requesterEmail, id string) (*models.Booking, error) {
	return s.ownedBooking(ctx, requesterEmail, id)
}

func (s *DefaultBookingService) ownedBooking(ctx context.Context, requesterEmail, id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if requesterEmail == "" || requesterEmail != b.PatientEmail {
		return nil, ErrForbidden
	}
	return b, nil
}
