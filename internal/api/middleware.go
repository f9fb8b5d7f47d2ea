package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/team-updates-api/internal/service"
)

// usernameContextKey is the gin context key for the authenticated admin's username
const usernameContextKey = "auth_username"

// authMiddleware guards admin routes with a bearer token. Every failure —
// missing header, wrong scheme, unconfigured key, bad signature, expired
// token — aborts with the same generic 401 before any handler (and so any
// store access) runs; the real cause goes to the log only.
func authMiddleware(auth service.AuthService, log zerolog.Logger) gin.HandlerFunc {
	mlog := log.With().Str("middleware", "auth").Logger()

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			mlog.Warn().Str("path", c.Request.URL.Path).Msg("Missing or malformed authorization header")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		claims, err := auth.VerifyToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			mlog.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("Token verification failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(usernameContextKey, claims.Username)
		c.Next()
	}
}
