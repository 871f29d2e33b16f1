package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fukimorihigh/server/cache"
	"github.com/fukimorihigh/server/config"
)

const AccountIDKey = "account_id"

const sessionCheckTimeout = 2 * time.Second

// BearerToken extracts the token from an Authorization header, or ""
// when the header is absent or not a Bearer scheme.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// Auth validates the Bearer JWT and requires a live session entry in
// the cache, so logout and server-side revocation take effect before
// the token expires.
func Auth(sec config.SecurityConfig, c cache.Cache) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenStr := BearerToken(ctx)
		if tokenStr == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		claims, err := ParseToken(tokenStr, sec.JWTSecret)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		cacheCtx, cancel := context.WithTimeout(ctx.Request.Context(), sessionCheckTimeout)
		defer cancel()
		sessionKey := "session:" + tokenStr
		exists, err := c.Exists(cacheCtx, sessionKey)
		if err != nil || !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}
		// Sliding session: activity pushes the cache entry out to the
		// full TTL again. The JWT exp still caps the session's lifetime.
		_ = c.Expire(cacheCtx, sessionKey, sec.JWTTTLH)

		ctx.Set(AccountIDKey, claims.AccountID)
		ctx.Next()
	}
}

// GetAccountID returns the authenticated account ID, or 0 outside Auth.
func GetAccountID(c *gin.Context) int64 {
	id, _ := c.Value(AccountIDKey).(int64)
	return id
}
