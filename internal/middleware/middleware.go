package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"record-tracker/internal/auth"
)

// Context key under which the guards publish the session user for handlers.
const ContextUserKey = "sessionUser"

// RequireAuth gates routes that need any authenticated user. Missing or
// expired sessions are answered with a silent redirect to the login form, not
// an error page.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)
		if user == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// RequireAdmin gates admin-only routes. A non-admin or anonymous request is
// redirected to login; it never learns whether the route exists.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)
		if user == nil || !user.IsAdmin {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// RequireUser gates the member-facing routes. Admins have no dashboard of
// their own records and are bounced to the admin panel instead.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)
		if user == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if user.IsAdmin {
			c.Redirect(http.StatusFound, "/admin")
			c.Abort()
			return
		}
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// SessionUser returns the user published by one of the guards above.
func SessionUser(c *gin.Context) *auth.SessionUser {
	if v, ok := c.Get(ContextUserKey); ok {
		if user, ok := v.(*auth.SessionUser); ok {
			return user
		}
	}
	return nil
}
