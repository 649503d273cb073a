// Package controller provides the HTTP handlers for the movielist catalog:
// registration and login, movie browsing and owner-only mutation.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BaseController provides the login gate shared by protected routes.
type BaseController struct{}

// checkLogin guards a route group. Browsers get redirected to the login
// form; AJAX and DELETE callers get a 401 instead of a redirect.
func (a *BaseController) checkLogin(c *gin.Context) {
	if loginUser(c) == nil {
		if isAjax(c) || c.Request.Method == http.MethodDelete {
			pureJsonMsg(c, http.StatusUnauthorized, false, "please log in first")
		} else {
			c.Redirect(http.StatusSeeOther, c.GetString("base_path")+"users/login")
		}
		c.Abort()
	} else {
		c.Next()
	}
}
