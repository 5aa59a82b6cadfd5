package middleware

import (
	"net/http"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

// ContextEmailKey is the gin context key holding the verified email claim.
const ContextEmailKey = "email"

// JWTAuthMiddleware verifies the bearer token. A missing credential yields 401;
// an invalid or expired one yields 403.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := utils.BearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "UnAuthorized access"})
			return
		}

		email, err := utils.ParseEmail(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			return
		}

		c.Set(ContextEmailKey, email)
		c.Next()
	}
}

// EmailFromContext returns the email set by JWTAuthMiddleware.
func EmailFromContext(c *gin.Context) string {
	return c.GetString(ContextEmailKey)
}
