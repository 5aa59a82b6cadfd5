package booking

import (
	"context"
	"fmt"
	"strings"

	"doctorsportal/models"

	"go.uber.org/zap"
)

func validateCandidate(b models.Booking) error {
	if strings.TrimSpace(b.Treatment) == "" ||
		strings.TrimSpace(b.Date) == "" ||
		strings.TrimSpace(b.Slot) == "" ||
		strings.TrimSpace(b.PatientEmail) == "" {
		return ErrInvalidBooking
	}
	return nil
}

// Admit stores candidate unless the patient already booked the same treatment
// on the same date. Only (treatment, date, patient) is checked: the slot is not
// validated against the catalog, and two patients may take the same slot.
func (s *DefaultBookingService) Admit(ctx context.Context, candidate models.Booking) (Admission, error) {
	if err := validateCandidate(candidate); err != nil {
		return Admission{}, err
	}

	existing, err := s.Repo.FetchByKey(ctx, candidate.Treatment, candidate.Date, candidate.PatientEmail)
	if err != nil {
		return Admission{}, fmt.Errorf("admission lookup failed: %w", err)
	}
	if existing != nil {
		s.Logger.Info("booking rejected: patient already booked this treatment",
			zap.String("treatment", candidate.Treatment),
			zap.String("date", candidate.Date),
			zap.String("existingSlot", existing.Slot),
		)
		return Admission{Status: AdmissionConflict, Booking: existing}, nil
	}

	candidate.ID = ""
	candidate.Paid = false
	candidate.TransactionID = ""
	stored, err := s.Repo.Insert(ctx, candidate)
	if err != nil {
		return Admission{}, fmt.Errorf("failed to store booking: %w", err)
	}
	s.Logger.Info("booking accepted",
		zap.String("id", stored.ID),
		zap.String("treatment", stored.Treatment),
		zap.String("date", stored.Date),
		zap.String("slot", stored.Slot),
	)
	return Admission{Status: AdmissionAccepted, Booking: stored}, nil
}
