// Package controller provides the HTTP request handlers for the shop: the
// public storefront, account routes, booking, and the role-gated CMS.
package controller

import (
	"errors"
	"net/http"

	"github.com/fengshuifortune/shop/logger"
	"github.com/fengshuifortune/shop/web/service"

	"github.com/gin-gonic/gin"
)

// BaseController provides common functionality for all controllers,
// including authentication checks.
type BaseController struct{}

// checkLogin is a middleware that verifies user authentication and handles
// unauthorized access: AJAX callers get a 401, browsers a login redirect.
func (a *BaseController) checkLogin(c *gin.Context) {
	if loggedUser(c) == nil {
		if isAjax(c) {
			pureJsonMsg(c, http.StatusUnauthorized, false, "Please login first")
		} else {
			c.Redirect(http.StatusTemporaryRedirect, "/login")
		}
		c.Abort()
	} else {
		c.Next()
	}
}

// abortWithError maps a non-validation service error onto the HTTP error
// taxonomy. Validation failures are handled per-form by the callers.
func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		c.String(http.StatusForbidden, "Forbidden")
	case errors.Is(err, service.ErrNotFound):
		c.String(http.StatusNotFound, "Not found")
	default:
		logger.Error("request failed:", err)
		c.String(http.StatusInternalServerError, "Internal error")
	}
	c.Abort()
}
