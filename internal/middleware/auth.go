package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/craftroots/storefront/internal/state"
)

// RequireAuth gates a route group on an active session. The session is a
// trust-on-read record owned by the auth container; there is nothing to
// verify beyond its presence.
func RequireAuth(auth *state.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.State().IsAuthenticated {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
