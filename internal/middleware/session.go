package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studioarcadia/prenota/internal/sessions"
)

// SessionCookie carries the opaque admin session token.
const SessionCookie = "admin_session"

// AdminGate rejects requests whose session cookie is missing or no longer in
// the store.
func AdminGate(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_session"})
			return
		}

		ok, err := store.Has(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session_check_failed"})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_session"})
			return
		}

		c.Next()
	}
}
