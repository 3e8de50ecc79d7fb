// File: sophros/middleware/auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/emersonmaddock/sophros/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthMiddleware authenticates requests with a bearer token. Tokens are
// verified against the identity provider (Firebase) when configured,
// falling back to locally signed dev tokens otherwise. Verified UIDs are
// cached briefly so repeated requests skip the provider round trip.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		// Cheap cache check before hitting the provider.
		cacheKey := utils.AuthCachePrefix + utils.HashToken(tokenString)
		authCache := utils.GetAuthCacheClient()
		if uid, err := authCache.Get(ctx, cacheKey).Result(); err == nil && uid != "" {
			c.Set("userID", uid)
			c.Next()
			return
		}

		uid, err := verifyToken(ctx, tokenString)
		if err != nil {
			logger.Debug("Token verification failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		if err := authCache.Set(ctx, cacheKey, uid, utils.AuthCacheTTL).Err(); err != nil {
			// Cache failures degrade to per-request verification.
			logger.Warn("Failed to cache verified token", zap.Error(err))
		}

		c.Set("userID", uid)
		c.Next()
	}
}

// verifyToken resolves a bearer token to a user ID via the identity
// provider, or via the dev-token path when no provider is configured.
func verifyToken(ctx context.Context, tokenString string) (string, error) {
	if client := utils.GetAuthClient(); client != nil {
		token, err := client.VerifyIDToken(ctx, tokenString)
		if err != nil {
			return "", err
		}
		return token.UID, nil
	}
	return utils.ExtractIDFromDevToken(tokenString)
}
