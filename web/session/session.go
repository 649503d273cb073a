// Package session stores the login token in the cookie-backed session.
// Only the serialized identity token goes into the cookie, never the user
// record; the auth service restores the identity from it on each request.
package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const loginToken = "LOGIN_TOKEN"

// SetLoginToken saves the serialized identity in the session.
func SetLoginToken(c *gin.Context, token string) error {
	s := sessions.Default(c)
	s.Set(loginToken, token)
	return s.Save()
}

// GetLoginToken returns the stored token, or "" for anonymous requests.
func GetLoginToken(c *gin.Context) string {
	s := sessions.Default(c)
	if obj := s.Get(loginToken); obj != nil {
		if token, ok := obj.(string); ok {
			return token
		}
	}
	return ""
}

// SetMaxAge adjusts the session cookie lifetime in seconds.
func SetMaxAge(c *gin.Context, maxAge int) error {
	s := sessions.Default(c)
	s.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	})
	return s.Save()
}

// Clear drops the session and expires the cookie.
func Clear(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}
