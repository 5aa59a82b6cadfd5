package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/doctor"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates admin-only roster operations.
type AdminHandler struct {
	DoctorService doctor.DoctorService
}

func NewAdminHandler(ds doctor.DoctorService) *AdminHandler {
	return &AdminHandler{DoctorService: ds}
}

// GetDoctorsHandler handles GET /doctor.
func (ah *AdminHandler) GetDoctorsHandler(c *gin.Context) {
	doctors, err := ah.DoctorService.List(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to fetch doctors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch doctors"})
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// AddDoctorHandler handles POST /doctor.
func (ah *AdminHandler) AddDoctorHandler(c *gin.Context) {
	var d models.Doctor
	if err := c.ShouldBindJSON(&d); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid doctor", err.Error())
		return
	}
	created, err := ah.DoctorService.Add(c.Request.Context(), d)
	if err != nil {
		if errors.Is(err, doctor.ErrDoctorExists) {
			c.JSON(http.StatusConflict, gin.H{"message": "doctor already exists"})
			return
		}
		getLogger(c).Error("Failed to add doctor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add doctor"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DeleteDoctorHandler handles DELETE /doctor/:email.
func (ah *AdminHandler) DeleteDoctorHandler(c *gin.Context) {
	email := c.Param("email")
	if err := ah.DoctorService.Remove(c.Request.Context(), email); err != nil {
		if errors.Is(err, doctor.ErrDoctorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "doctor not found"})
			return
		}
		getLogger(c).Error("Failed to delete doctor", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete doctor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": 1})
}
