// File: loanguard/middleware/session.go
package middleware

import (
	"net/http"
	"time"

	"loanguard/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionKey is the gin context key holding the session id.
const SessionKey = "sessionID"

// SessionMiddleware makes sure every request carries a session cookie. A
// missing or malformed cookie is replaced with a fresh id; the cookie is
// re-issued on every request so it expires ttl after the last visit.
func SessionMiddleware(ttl time.Duration, secure bool) gin.HandlerFunc {
	if ttl <= 0 {
		ttl = utils.DefaultSessionTTL
	}
	return func(c *gin.Context) {
		id, err := c.Cookie(utils.SessionCookieName)
		if err != nil {
			id = uuid.NewString()
		} else if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(utils.SessionCookieName, id, int(ttl.Seconds()), "/", "", secure, true)
		c.Set(SessionKey, id)
		c.Next()
	}
}

// SessionID returns the id set by SessionMiddleware.
func SessionID(c *gin.Context) string {
	return c.GetString(SessionKey)
}

// RequestLogger stores a per-request logger tagged with the session id under
// the "logger" key.
func RequestLogger(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("logger", base.With(
			zap.String("session", SessionID(c)),
			zap.String("path", c.FullPath()),
		))
		c.Next()
	}
}
