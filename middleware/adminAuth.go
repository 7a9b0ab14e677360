package middleware

import (
	"net/http"

	"carhive/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthAdminMiddleware authenticates admin requests: valid token, admin
// role, live Redis session.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		subject, role, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || subject == "" || role != utils.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		session, err := utils.GetAuthSession(utils.GetAuthCacheClient(), utils.HashToken(tokenString))
		if err != nil || session == nil || session.Role != utils.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please sign in again"})
			return
		}

		c.Set("adminID", subject)
		c.Set("authToken", tokenString)
		c.Next()
	}
}
