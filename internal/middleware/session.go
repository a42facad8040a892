package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionKey is the context key holding the storefront session id.
	SessionKey = "session_id"

	sessionCookie = "carrito_sid"
	sessionMaxAge = 7 * 24 * 60 * 60 // matches the cart TTL in Redis
)

// CarritoSession assigns each visitor an anonymous session id carried in a
// cookie. The id only names the cart key in Redis; it implies no identity
// and requires no login.
func CarritoSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(sessionCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
		}
		// Refresh the cookie on every request so active shoppers never
		// lose their cart mid-session.
		c.SetCookie(sessionCookie, sid, sessionMaxAge, "/", "", false, true)
		c.Set(SessionKey, sid)
		c.Next()
	}
}

// GetSessionID returns the session id set by CarritoSession.
func GetSessionID(c *gin.Context) string {
	return c.GetString(SessionKey)
}
