package handlers

import (
	"rentwise/middleware"
	"rentwise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves a Zap logger from the Gin context or falls back to the global one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// actorID is the authenticated caller placed in the context by JWTAuthMiddleware.
func actorID(c *gin.Context) string {
	return c.GetString(middleware.ActorIDKey)
}
