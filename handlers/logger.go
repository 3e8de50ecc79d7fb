package handlers

import (
	"github.com/emersonmaddock/sophros/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger prefers a request-scoped logger placed on the context by
// middleware, falling back to the process logger.
func getLogger(c *gin.Context) *zap.Logger {
	if v, ok := c.Get("logger"); ok {
		if logger, ok := v.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// currentUserID returns the authenticated user's ID set by AuthMiddleware.
func currentUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
