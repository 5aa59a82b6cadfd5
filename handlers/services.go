package handlers

import (
	"net/http"

	"doctorsportal/services/availability"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the service catalog and slot availability.
type CatalogHandler struct {
	Availability availability.AvailabilityService
}

func NewCatalogHandler(svc availability.AvailabilityService) *CatalogHandler {
	return &CatalogHandler{Availability: svc}
}

// GetServicesHandler handles GET /service.
func (h *CatalogHandler) GetServicesHandler(c *gin.Context) {
	services, err := h.Availability.ServiceNames(c.Request.Context())
	if err != nil {
		getLogger(c).Error("GetServices: failed to fetch services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch services"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetAvailableHandler handles GET /available?date=.
// A missing date is not an error; it yields the full catalog.
func (h *CatalogHandler) GetAvailableHandler(c *gin.Context) {
	date := c.Query("date")
	services, err := h.Availability.Available(c.Request.Context(), date)
	if err != nil {
		getLogger(c).Error("GetAvailable: failed to compute availability", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to compute availability"})
		return
	}
	c.JSON(http.StatusOK, services)
}
