package middleware

import (
	"context"
	"net/http"
	"strings"

	"parkbay/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Context keys set by IdentityMiddleware.
const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// IdentityMiddleware resolves the caller's identity from the bearer token
// issued by the identity provider. Verified token hashes are cached in
// Redis so repeat requests skip signature verification; cache outages fall
// back to verifying every request.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		computedHash := utils.HashToken(tokenString)

		authCache := utils.GetAuthCacheClient()
		cacheEnabled := authCache != nil

		// A cached hash means this exact token was verified recently.
		if cacheEnabled {
			cacheKey := utils.AuthCachePrefix + computedHash
			cached, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				parts := strings.SplitN(cached, "|", 2)
				if len(parts) == 2 && parts[0] != "" {
					_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
					c.Set(ContextUserID, parts[0])
					c.Set(ContextUserRole, parts[1])
					c.Next()
					return
				}
			} else if err != redis.Nil {
				zap.L().Warn("auth cache lookup failed, verifying token directly", zap.Error(err))
			}
		}

		userID, role, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		if cacheEnabled {
			cacheKey := utils.AuthCachePrefix + computedHash
			_ = authCache.Set(ctx, cacheKey, userID+"|"+role, utils.AuthCacheTTL).Err()
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserRole, role)
		c.Next()
	}
}

// RequireRole gates a route group to one role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserRole) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Insufficient role for this operation",
			})
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the resolved identity for the request, if any.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
