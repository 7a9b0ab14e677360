package middleware

import (
	"net/http"
	"strings"

	"carhive/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthUserMiddleware authenticates customer requests. The token must be
// valid, carry the user role, and still have a live session in Redis (so a
// sign-out revokes it immediately).
func JWTAuthUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		subject, role, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || subject == "" || role != utils.RoleUser {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		session, err := utils.GetAuthSession(utils.GetAuthCacheClient(), utils.HashToken(tokenString))
		if err != nil || session == nil || session.SubjectID != subject {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please sign in again"})
			return
		}

		c.Set("userID", subject)
		c.Set("authToken", tokenString)
		c.Next()
	}
}

// bearerToken pulls the token out of the Authorization header.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" {
		return "", false
	}
	return tokenString, true
}
