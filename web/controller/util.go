package controller

import (
	"net"
	"net/http"
	"strings"

	"movielist/config"
	"movielist/database/model"
	"movielist/web/entity"

	"github.com/gin-gonic/gin"
)

// loginUser returns the identity resolved by the server's session middleware,
// or nil for anonymous requests.
func loginUser(c *gin.Context) *model.User {
	if obj, exists := c.Get("login_user"); exists {
		if user, ok := obj.(*model.User); ok {
			return user
		}
	}
	return nil
}

// getRemoteIp extracts the real IP address from the request headers or remote address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		ips := strings.Split(value, ",")
		return ips[0]
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

// pureJsonMsg sends a JSON message response with a custom status code.
func pureJsonMsg(c *gin.Context, statusCode int, success bool, msg string) {
	c.JSON(statusCode, entity.Msg{
		Success: success,
		Msg:     msg,
	})
}

// html renders a template with the shared page context merged in.
func html(c *gin.Context, name string, title string, data gin.H) {
	htmlStatus(c, http.StatusOK, name, title, data)
}

func htmlStatus(c *gin.Context, status int, name string, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["title"] = title
	data["base_path"] = c.GetString("base_path")
	data["user"] = loginUser(c)
	c.HTML(status, name, getContext(data))
}

// errorPage renders the generic error view with the given status.
func errorPage(c *gin.Context, status int, msg string) {
	htmlStatus(c, status, "error.html", "Error", gin.H{"message": msg})
}

// getContext adds version info to the provided gin.H.
func getContext(h gin.H) gin.H {
	a := gin.H{
		"cur_ver": config.GetVersion(),
	}
	for key, value := range h {
		a[key] = value
	}
	return a
}

// isAjax checks if the request is an AJAX request.
func isAjax(c *gin.Context) bool {
	return c.GetHeader("X-Requested-With") == "XMLHttpRequest"
}
