// Package middleware provides gin middleware for session resolution and
// capability checks.
package middleware

import (
	"github.com/fengshuifortune/shop/web/service"
	"github.com/fengshuifortune/shop/web/session"

	"github.com/gin-gonic/gin"
)

// CurrentUser resolves the acting user from the session cookie and stores it
// in the request context under "user". A missing, malformed, or dangling
// session resolves to anonymous (no "user" value), never to an error.
func CurrentUser(userService *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, ok := session.GetLoginUserId(c); ok {
			if user, err := userService.GetUser(id); err == nil {
				c.Set("user", user)
			}
		}
		c.Next()
	}
}
