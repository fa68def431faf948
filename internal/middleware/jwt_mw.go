package middleware

import (
	"net/http"
	"strings"

	"wildcats_backend/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	AuthUserKey = "authUser"
	AuthRoleKey = "authRole"
	AuthIDKey   = "authID"
)

// JWTAuthMiddleware creates a middleware for JWT authentication.
//
// The status split is part of the public contract: a literally absent token
// is 401 ("log in"), a token that is present but fails verification is 403
// ("your session is broken"). The front end branches on the difference.
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
			return
		}

		claims, err := jwtUtil.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid or expired token"})
			return
		}

		// Set user information in context
		c.Set(AuthUserKey, claims.Username)
		c.Set(AuthRoleKey, claims.Role)
		c.Set(AuthIDKey, claims.ID)

		c.Next()
	}
}

// bearerToken extracts the second space-separated segment of the header,
// mirroring the original server's "authHeader.split(' ')[1]" so that the
// same inputs land on the same side of the 401/403 split.
func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.Split(header, " ")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
