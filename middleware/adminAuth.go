package middleware

import (
	"net/http"

	"doctorsportal/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminOnlyMiddleware must run after JWTAuthMiddleware. Non-admins get 403.
func AdminOnlyMiddleware(userService user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		requester := EmailFromContext(c)
		if requester == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "UnAuthorized access"})
			return
		}

		isAdmin, err := userService.IsAdmin(c.Request.Context(), requester)
		if err != nil {
			zap.L().Error("admin check failed", zap.String("email", requester), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Failed to verify role"})
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
