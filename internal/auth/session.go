package auth

import (
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"record-tracker/internal/models"
)

// SessionName is the cookie holding the signed session id.
const SessionName = "record_tracker_session"

// SessionMaxAge is the fixed session lifetime: 8 hours from the last write.
const SessionMaxAge = 8 * 60 * 60

// Keys inside the server-side session record.
const (
	keyUserID  = "user_id"
	keyName    = "user_name"
	keyEmail   = "user_email"
	keyIsAdmin = "is_admin"
)

// SessionUser is the authenticated identity carried by a session.
type SessionUser struct {
	ID      uint
	Name    string
	Email   string
	IsAdmin bool
}

// NewSessionStore builds a session store persisted in the application
// database, so sessions survive process restarts. The cookie only carries the
// signed session id; user data stays server-side.
func NewSessionStore(db *gorm.DB, secret string) sessions.Store {
	store := gormsessions.NewStore(db, true, []byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   SessionMaxAge,
		HttpOnly: true,
	})
	return store
}

// SetUser writes the authenticated user into the request's session.
func SetUser(c *gin.Context, user *models.User) error {
	session := sessions.Default(c)
	session.Set(keyUserID, user.ID)
	session.Set(keyName, user.Name)
	session.Set(keyEmail, user.Email)
	session.Set(keyIsAdmin, user.IsAdmin)
	return session.Save()
}

// CurrentUser reads the authenticated user out of the session, or nil when
// the request is anonymous.
func CurrentUser(c *gin.Context) *SessionUser {
	session := sessions.Default(c)
	id, ok := session.Get(keyUserID).(uint)
	if !ok || id == 0 {
		return nil
	}
	name, _ := session.Get(keyName).(string)
	email, _ := session.Get(keyEmail).(string)
	isAdmin, _ := session.Get(keyIsAdmin).(bool)
	return &SessionUser{ID: id, Name: name, Email: email, IsAdmin: isAdmin}
}

// ClearUser invalidates the session server-side and expires the cookie.
func ClearUser(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1, HttpOnly: true})
	return session.Save()
}
