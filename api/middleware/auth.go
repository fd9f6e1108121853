package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PIG208/Airbook/config"
	"github.com/PIG208/Airbook/internal/auth"
)

// SessionKey is the gin context key the parsed session is stored under.
const SessionKey = "session"

// SessionMiddleware parses the session cookie, if any, and stores the
// resulting session in the request context. An absent or invalid cookie
// leaves the caller anonymous; route guards decide what that means.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(auth.CookieName)
		if err != nil || raw == "" {
			c.Next()
			return
		}
		conf, err := config.Fetch()
		if err != nil {
			c.Next()
			return
		}
		session, err := auth.ParseToken(raw, []byte(conf.Server.SecretKey))
		if err != nil {
			c.Next()
			return
		}
		c.Set(SessionKey, session)
		c.Next()
	}
}

// SessionFromContext retrieves the session established by
// SessionMiddleware, or nil for anonymous callers.
func SessionFromContext(c *gin.Context) *auth.Session {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil
	}
	session, _ := v.(*auth.Session)
	return session
}

// RequireSession rejects anonymous callers.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if SessionFromContext(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"result":  "error",
				"message": "Looks like you are trying to access something that requires login.",
			})
			return
		}
		c.Next()
	}
}

// RequireStaff rejects callers without an airline staff session. Flight
// and airport management is staff-only.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := SessionFromContext(c)
		if session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"result":  "error",
				"message": "Looks like you are trying to access something that requires login.",
			})
			return
		}
		if session.Role != auth.RoleStaff {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"result":  "error",
				"message": "You don't have the permission to perform this action!",
			})
			return
		}
		c.Next()
	}
}
