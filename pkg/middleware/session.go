package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// OwnerKey is the gin context key holding the session owner identifier.
const OwnerKey = "owner_id"

// SessionCookie is the name of the browser session cookie.
const SessionCookie = "cm_session"

// Session cookies live for 30 days, matching the UI's expectations.
const sessionMaxAge = 30 * 24 * 60 * 60

// SessionMiddleware assigns each client an opaque session identifier carried
// in an HttpOnly cookie. The identifier partitions per-user state (saved
// posts); it carries no claims and is regenerated when the cookie is absent.
func SessionMiddleware(secure bool) HandlerFunc {
	return func(c Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || id == "" {
			id = uuid.New().String()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, id, sessionMaxAge, "/", "", secure, true)
		}
		c.Set(OwnerKey, id)
		c.Next()
	}
}

// OwnerID returns the session owner identifier for the current request.
func OwnerID(c Context) string {
	return c.GetString(OwnerKey)
}
