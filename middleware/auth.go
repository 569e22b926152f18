package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gtnglobal/gtn-backend/internal/session"
)

// RequireAdmin gates privileged routes on the session cookie. A missing
// or invalid token aborts the request with 401; a valid one passes
// through with no further effect.
func RequireAdmin(codec *session.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || !codec.Verify(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
