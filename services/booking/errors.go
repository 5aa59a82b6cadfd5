package booking

import "errors"

var (
	ErrInvalidBooking     = errors.New("treatment, date, slot and patient are required")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrForbidden          = errors.New("forbidden access")
	ErrMissingTxn         = errors.New("transactionId is required")
	ErrPaymentNotVerified = errors.New("payment could not be verified")
	ErrAlreadyPaid        = errors.New("booking is already paid")
	ErrTransactionUsed    = errors.New("transaction already applied to another booking")
)
