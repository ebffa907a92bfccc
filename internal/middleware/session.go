package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "session_id"

// SessionMiddleware gives every visitor a session ID cookie and attaches it to
// the request context. The ID is the only key to the session's cart and order
// simulation; there is no identity behind it.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || id == "" {
			id = uuid.New().String()
			c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
		}

		c.Set("sessionID", id)
		c.Next()
	}
}
