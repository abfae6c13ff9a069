package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	accessTokenCookie  = "user_access_token"
	usernameCookie     = "username"
	errorMessageCookie = "error_message"
)

// pageData is the single view model shared by all templates
type pageData struct {
	Title     string
	Username  string
	Error     string
	Errors    []string
	Login     string
	Page      interface{}
	Locations interface{}
	City      string
	Status    int
	Message   string
}

func (s *HTTPServerAdapter) setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", s.config.CookieSecure, true)
}

func (s *HTTPServerAdapter) clearCookie(c *gin.Context, name string) {
	s.setCookie(c, name, "", -1)
}

func (s *HTTPServerAdapter) setFlash(c *gin.Context, message string) {
	s.setCookie(c, errorMessageCookie, message, 0)
}

// takeFlash reads the flash message and schedules its deletion
func (s *HTTPServerAdapter) takeFlash(c *gin.Context) string {
	message, err := c.Cookie(errorMessageCookie)
	if err != nil || message == "" {
		return ""
	}
	s.clearCookie(c, errorMessageCookie)
	return message
}

func accessToken(c *gin.Context) string {
	token, err := c.Cookie(accessTokenCookie)
	if err != nil {
		return ""
	}
	return token
}

func username(c *gin.Context) string {
	name, err := c.Cookie(usernameCookie)
	if err != nil {
		return ""
	}
	return name
}

func (s *HTTPServerAdapter) render(c *gin.Context, status int, name string, data pageData) {
	if data.Username == "" {
		data.Username = username(c)
	}
	c.HTML(status, name, data)
}
