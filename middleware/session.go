package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "storefront_session"

// Session cookie lives a year; the Redis snapshot TTL expires idle carts
// long before that.
const sessionCookieMaxAge = 365 * 24 * 60 * 60

// SessionMiddleware resolves the session key that namespaces the cart and
// auth snapshots. An authenticated request reuses the session minted at
// login; anonymous browsers get a stable cookie so the cart survives a
// reload.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if session, ok := GetAuthSessionFromContext(c); ok {
			c.Set("session", session)
			c.Next()
			return
		}

		session, err := c.Cookie(sessionCookie)
		if err != nil || session == "" {
			session = uuid.Must(uuid.NewV7()).String()
			c.SetCookie(sessionCookie, session, sessionCookieMaxAge, "/", "", false, true)
		}
		c.Set("session", session)
		c.Next()
	}
}

// GetSessionFromContext returns the snapshot namespace key for the request.
func GetSessionFromContext(c *gin.Context) (string, bool) {
	session, exists := c.Get("session")
	if !exists {
		return "", false
	}
	return session.(string), true
}
