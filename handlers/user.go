package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves sign-in, user listing and role management.
type UserHandler struct {
	UserService user.UserService
}

func NewUserHandler(us user.UserService) *UserHandler {
	return &UserHandler{UserService: us}
}

// LoginHandler handles PUT /user/:email. The identity provider's ID token
// travels as the bearer credential.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	email := c.Param("email")
	credential, _ := utils.BearerToken(c.GetHeader("Authorization"))
	resp, err := h.UserService.Login(c.Request.Context(), email, credential)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidEmail):
			utils.JSONError(c, http.StatusBadRequest, "invalid email", err.Error())
			return
		case errors.Is(err, user.ErrMissingCredential):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "UnAuthorized access"})
			return
		case errors.Is(err, user.ErrIdentityRejected):
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			return
		}
		getLogger(c).Error("Login: failed", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to sign in"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetAllUsersHandler handles GET /user.
func (h *UserHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.UserService.GetAllUsers(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to fetch all users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// MakeAdminHandler handles PUT /user/admin/:email.
func (h *UserHandler) MakeAdminHandler(c *gin.Context) {
	email := c.Param("email")
	usr, err := h.UserService.MakeAdmin(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, user.ErrInvalidEmail) {
			utils.JSONError(c, http.StatusBadRequest, "invalid email", err.Error())
			return
		}
		getLogger(c).Error("MakeAdmin: failed", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update role"})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// CheckAdminHandler handles GET /admin/:email.
func (h *UserHandler) CheckAdminHandler(c *gin.Context) {
	email := c.Param("email")
	isAdmin, err := h.UserService.IsAdmin(c.Request.Context(), email)
	if err != nil {
		getLogger(c).Error("CheckAdmin: failed", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to check role"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}
