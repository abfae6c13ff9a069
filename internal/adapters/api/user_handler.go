package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"weathertracker.app/internal/core/user"
	"weathertracker.app/pkg/errors"
)

// getAuthorizationPage handles GET /authorization requests
func (s *HTTPServerAdapter) getAuthorizationPage(c *gin.Context) {
	s.render(c, http.StatusOK, "authorization.html", pageData{
		Title: "Sign in",
		Error: s.takeFlash(c),
	})
}

// getRegistrationPage handles GET /registration requests
func (s *HTTPServerAdapter) getRegistrationPage(c *gin.Context) {
	s.render(c, http.StatusOK, "registration.html", pageData{Title: "Sign up"})
}

// register handles POST /register requests
func (s *HTTPServerAdapter) register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		s.renderRegistrationErrors(c, form.Login, registrationMessage(err))
		return
	}

	created, err := s.userUseCase.Register(c.Request.Context(), user.RegisterParams{
		Login:            form.Login,
		Password:         form.Password,
		RepeatedPassword: form.RepeatedPassword,
	})
	if err != nil {
		if errors.IsValidationError(err) || errors.IsAlreadyExistsError(err) {
			s.renderRegistrationErrors(c, form.Login, messageOf(err))
			return
		}
		s.handleError(c, err)
		return
	}

	slog.Info("User registered", "login", created.Login, "request_id", requestID(c))
	c.Redirect(http.StatusSeeOther, "/authorization")
}

func (s *HTTPServerAdapter) renderRegistrationErrors(c *gin.Context, login string, messages ...string) {
	s.render(c, http.StatusBadRequest, "registration.html", pageData{
		Title:  "Sign up",
		Errors: messages,
		Login:  login,
	})
}

// login handles POST /token requests. Failures become a flash message on the dashboard.
func (s *HTTPServerAdapter) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		s.setFlash(c, errors.NewInvalidCredentialsError().Message)
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	token, err := s.userUseCase.Login(c.Request.Context(), user.LoginParams{
		Login:    form.Login,
		Password: form.Password,
	})
	if err != nil {
		if errors.TypeOf(err) != errors.InvalidCredentialsError {
			s.handleError(c, err)
			return
		}
		s.setFlash(c, messageOf(err))
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	maxAge := int(s.config.TokenTTL.Seconds())
	s.setCookie(c, accessTokenCookie, token, maxAge)
	s.setCookie(c, usernameCookie, form.Login, maxAge)
	c.Redirect(http.StatusSeeOther, "/")
}

// logout handles POST /logout requests
func (s *HTTPServerAdapter) logout(c *gin.Context) {
	s.clearCookie(c, accessTokenCookie)
	s.clearCookie(c, usernameCookie)
	c.Redirect(http.StatusSeeOther, "/")
}
