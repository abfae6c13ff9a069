package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	errorspkg "weathertracker.app/pkg/errors"
)

const internalErrorMessage = "Internal server error"

// statusFor maps an application error to the HTTP status and the message shown to the user
func statusFor(err error) (int, string) {
	var appErr *errorspkg.AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError, internalErrorMessage
	}

	switch appErr.Type {
	case errorspkg.ValidationError, errorspkg.MissingQueryError:
		return http.StatusBadRequest, appErr.Message
	case errorspkg.NotFoundError:
		return http.StatusNotFound, appErr.Message
	case errorspkg.AlreadyExistsError, errorspkg.DuplicateLocationError:
		return http.StatusConflict, appErr.Message
	case errorspkg.AuthRequiredError, errorspkg.InvalidTokenError, errorspkg.TokenExpiredError:
		return http.StatusUnauthorized, "Could not validate credentials"
	case errorspkg.InvalidCredentialsError:
		return http.StatusUnauthorized, appErr.Message
	case errorspkg.UpstreamWeatherError, errorspkg.UpstreamGeocodingError:
		return http.StatusBadGateway, "Weather service is unavailable, try again later"
	default:
		return http.StatusInternalServerError, internalErrorMessage
	}
}

// handleError renders error.html for err
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	status, message := statusFor(err)
	if status >= http.StatusInternalServerError {
		slog.Error("Request failed", "path", c.Request.URL.Path, "request_id", requestID(c), "error", err)
	} else {
		slog.Debug("Request rejected", "path", c.Request.URL.Path, "status", status, "error", err)
	}

	s.render(c, status, "error.html", pageData{
		Title:   "Error",
		Status:  status,
		Message: message,
	})
	c.Abort()
}
