// Package session manages the login session. The cookie holds an opaque
// token; only the user id is stored behind it, never the user row.
package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const loginUserId = "LOGIN_USER_ID"

// CookieName is the session cookie delivered to the browser.
const CookieName = "fsshop"

// SetLoginUser records the user id in the session.
func SetLoginUser(c *gin.Context, userId int) error {
	s := sessions.Default(c)
	s.Set(loginUserId, userId)
	return s.Save()
}

// GetLoginUserId returns the user id in the session, or false when the
// session is absent or malformed.
func GetLoginUserId(c *gin.Context) (int, bool) {
	s := sessions.Default(c)
	obj := s.Get(loginUserId)
	if obj == nil {
		return 0, false
	}
	id, ok := obj.(int)
	if !ok {
		return 0, false
	}
	return id, true
}

// IsLogin reports whether the request carries a session with a user id.
func IsLogin(c *gin.Context) bool {
	_, ok := GetLoginUserId(c)
	return ok
}

// ClearSession invalidates the session so a reused cookie resolves to
// anonymous.
func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	if err := s.Save(); err != nil {
		return err
	}
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
	return nil
}
