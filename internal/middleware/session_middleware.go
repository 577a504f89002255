package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionIDKey is the gin context key holding the session id
	SessionIDKey = "sessionID"

	SessionHeader = "X-Session-ID"
	SessionCookie = "taskflow_session"
)

// SessionMiddleware identifies the session of every request. The id comes from
// the X-Session-ID header, then the session cookie; a new one is issued when
// neither is present. The id is echoed back in the header and the cookie.
func SessionMiddleware(lifetime time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID != "" {
			if _, err := uuid.Parse(sessionID); err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
				return
			}
		} else if cookie, err := c.Cookie(SessionCookie); err == nil {
			if _, err := uuid.Parse(cookie); err == nil {
				sessionID = cookie
			}
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		c.Set(SessionIDKey, sessionID)
		c.Header(SessionHeader, sessionID)
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, sessionID, int(lifetime.Seconds()), "/", "", false, true)
		c.Next()
	}
}
