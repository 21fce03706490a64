package middleware

import (
	"net/http"
	"strings"

	"rentwise/utils"

	"github.com/gin-gonic/gin"
)

const (
	ActorIDKey = "actorID"
	RoleKey    = "role"
)

// JWTAuthMiddleware validates the bearer token and stores the caller's id and
// role in the context. When roles are given the caller must hold one of them.
func JWTAuthMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		actorID, role, err := utils.ExtractIdentity(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if len(roles) > 0 && !hasRole(roles, role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "This action requires role " + strings.Join(roles, " or ")})
			return
		}

		c.Set(ActorIDKey, actorID)
		c.Set(RoleKey, role)
		c.Next()
	}
}

func hasRole(allowed []string, role string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
