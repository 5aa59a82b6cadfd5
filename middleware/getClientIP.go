package middleware

import "github.com/gin-gonic/gin"

// getClientIP defers to gin, which honours X-Forwarded-For and X-Real-IP only
// when the peer is one of the engine's trusted proxies.
func getClientIP(c *gin.Context) string {
	return c.ClientIP()
}
