// File: handlers/bundle.go
package handlers

import (
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserService user.UserService
	Health      *utils.HealthMonitor

	// Catalog endpoints
	GetServicesHandler  gin.HandlerFunc
	GetAvailableHandler gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler       gin.HandlerFunc
	ListBookingsHandler        gin.HandlerFunc
	GetBookingHandler          gin.HandlerFunc
	ConfirmPaymentHandler      gin.HandlerFunc
	CreatePaymentIntentHandler gin.HandlerFunc

	// User endpoints
	LoginHandler       gin.HandlerFunc
	GetAllUsersHandler gin.HandlerFunc
	MakeAdminHandler   gin.HandlerFunc
	CheckAdminHandler  gin.HandlerFunc

	// Admin endpoints
	AdminHandler *AdminHandler
}
