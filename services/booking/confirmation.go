package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"
	"doctorsportal/services/payment"

	"go.uber.org/zap"
)

// ConfirmPayment marks the requester's booking paid once the gateway reports
// the referenced intent as succeeded for the booking's price, then records
// the payment. The two writes are not transactional; a failed payment record
// is logged and the updated booking is still returned.
func (s *DefaultBookingService) ConfirmPayment(ctx context.Context, requesterEmail, id string, confirmation models.PaymentConfirmation) (*models.Booking, error) {
	if confirmation.TransactionID == "" {
		return nil, ErrMissingTxn
	}

	b, err := s.ownedBooking(ctx, requesterEmail, id)
	if err != nil {
		return nil, err
	}
	if b.Paid {
		if b.TransactionID == confirmation.TransactionID {
			return b, nil
		}
		return nil, ErrAlreadyPaid
	}

	intent, err := s.verifyIntent(ctx, b, confirmation.TransactionID)
	if err != nil {
		return nil, err
	}

	updated, err := s.Repo.MarkPaid(ctx, b.ID, confirmation.TransactionID)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrDuplicateTransaction):
			return nil, ErrTransactionUsed
		}
		return nil, fmt.Errorf("failed to mark booking paid: %w", err)
	}

	_, err = s.Payments.Create(ctx, models.Payment{
		BookingID:     updated.ID,
		TransactionID: confirmation.TransactionID,
		Amount:        float64(intent.Amount) / 100,
	})
	if err != nil {
		s.Logger.Error("payment record failed",
			zap.String("booking", updated.ID),
			zap.String("transactionId", confirmation.TransactionID),
			zap.Error(err),
		)
	}
	return updated, nil
}

func (s *DefaultBookingService) verifyIntent(ctx context.Context, b *models.Booking, intentID string) (*payment.Intent, error) {
	if s.Gateway == nil {
		return nil, ErrPaymentNotVerified
	}
	intent, err := s.Gateway.GetIntent(ctx, intentID)
	if err != nil {
		if errors.Is(err, payment.ErrIntentNotFound) {
			return nil, ErrPaymentNotVerified
		}
		return nil, err
	}
	if intent.Status != payment.IntentSucceeded {
		s.Logger.Warn("payment intent not settled",
			zap.String("booking", b.ID),
			zap.String("intent", intentID),
			zap.String("status", intent.Status),
		)
		return nil, ErrPaymentNotVerified
	}
	// Bookings without a recorded price accept any settled amount.
	if b.Price > 0 && intent.Amount != payment.ToMinorUnits(b.Price) {
		s.Logger.Warn("payment intent amount mismatch",
			zap.String("booking", b.ID),
			zap.String("intent", intentID),
			zap.Int64("amount", intent.Amount),
			zap.Float64("price", b.Price),
		)
		return nil, ErrPaymentNotVerified
	}
	return intent, nil
}
