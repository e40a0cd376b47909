package middleware

import (
	"net/http"

	"github.com/fengshuifortune/shop/database/model"
	"github.com/fengshuifortune/shop/web/access"

	"github.com/gin-gonic/gin"
)

// RequireCapability rejects the request with 403 before the handler runs
// unless the resolved user holds the capability. Anonymous holds none.
func RequireCapability(capability access.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		userVal, exists := c.Get("user")
		if !exists {
			c.String(http.StatusForbidden, "Forbidden")
			c.Abort()
			return
		}
		user, ok := userVal.(*model.User)
		if !ok || !access.UserCan(user, capability) {
			c.String(http.StatusForbidden, "Forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}
