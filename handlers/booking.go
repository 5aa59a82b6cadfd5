package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/booking"
	"doctorsportal/services/payment"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves booking admission, lookups and payments.
type BookingHandler struct {
	BookingSvc booking.BookingService
	Gateway    payment.Gateway
	Currency   string
}

func NewBookingHandler(svc booking.BookingService, gateway payment.Gateway, currency string) *BookingHandler {
	return &BookingHandler{BookingSvc: svc, Gateway: gateway, Currency: currency}
}

// CreateBookingHandler handles POST /booking.
// A duplicate (treatment, date, patient) is reported as success=false with the existing booking.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	var candidate models.Booking
	if err := c.ShouldBindJSON(&candidate); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking", err.Error())
		return
	}

	admission, err := h.BookingSvc.Admit(c.Request.Context(), candidate)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidBooking) {
			utils.JSONError(c, http.StatusBadRequest, "invalid booking", err.Error())
			return
		}
		logger.Error("CreateBooking: admission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create booking"})
		return
	}

	switch admission.Status {
	case booking.AdmissionAccepted:
		c.JSON(http.StatusOK, gin.H{"success": true, "booking": admission.Booking})
	case booking.AdmissionConflict:
		c.JSON(http.StatusOK, gin.H{"success": false, "booking": admission.Booking})
	default:
		logger.Error("CreateBooking: unexpected admission status", zap.Stringer("status", admission.Status))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create booking"})
	}
}

// ListBookingsHandler handles GET /booking?patient=.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	patient := c.Query("patient")
	bookings, err := h.BookingSvc.ListForPatient(c.Request.Context(), middleware.EmailFromContext(c), patient)
	if err != nil {
		if errors.Is(err, booking.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			return
		}
		getLogger(c).Error("ListBookings: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingHandler handles GET /booking/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	id := c.Param("id")
	b, err := h.BookingSvc.GetByID(c.Request.Context(), middleware.EmailFromContext(c), id)
	if err != nil {
		h.writeLookupError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ConfirmPaymentHandler handles PATCH /booking/:id.
func (h *BookingHandler) ConfirmPaymentHandler(c *gin.Context) {
	id := c.Param("id")

	var body models.PaymentConfirmation
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payment confirmation", err.Error())
		return
	}

	updated, err := h.BookingSvc.ConfirmPayment(c.Request.Context(), middleware.EmailFromContext(c), id, body)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrMissingTxn):
			utils.JSONError(c, http.StatusBadRequest, "invalid payment confirmation", err.Error())
		case errors.Is(err, booking.ErrPaymentNotVerified):
			utils.JSONError(c, http.StatusPaymentRequired, "payment not verified", err.Error())
		case errors.Is(err, booking.ErrAlreadyPaid), errors.Is(err, booking.ErrTransactionUsed):
			utils.JSONError(c, http.StatusConflict, "payment already applied", err.Error())
		case errors.Is(err, payment.ErrGateway):
			c.JSON(http.StatusBadGateway, gin.H{"message": "payment gateway unavailable"})
		default:
			h.writeLookupError(c, id, err)
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

// CreatePaymentIntentHandler handles POST /create-payment-intent.
func (h *BookingHandler) CreatePaymentIntentHandler(c *gin.Context) {
	var body models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payment request", err.Error())
		return
	}

	secret, err := h.Gateway.CreateIntent(c.Request.Context(), body.Price, h.Currency)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidAmount):
			utils.JSONError(c, http.StatusBadRequest, "invalid payment request", err.Error())
		case errors.Is(err, payment.ErrGateway):
			c.JSON(http.StatusBadGateway, gin.H{"message": "payment gateway unavailable"})
		default:
			getLogger(c).Error("CreatePaymentIntent: failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create payment intent"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

func (h *BookingHandler) writeLookupError(c *gin.Context, id string, err error) {
	if errors.Is(err, booking.ErrForbidden) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
		return
	}
	if errors.Is(err, booking.ErrBookingNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "booking not found"})
		return
	}
	getLogger(c).Error("booking lookup failed", zap.String("id", id), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch booking"})
}
