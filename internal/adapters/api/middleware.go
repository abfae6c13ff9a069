package api

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"weathertracker.app/internal/core/user"
)

const (
	requestIDHeader   = "X-Request-ID"
	requestIDKey      = "request_id"
	currentUserKey    = "current_user"
	maxRequestIDBytes = 64
)

// requestIDMiddleware keeps a caller-supplied X-Request-ID or assigns a new one
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > maxRequestIDBytes {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

func requestLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		slog.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", requestID(c))
	}
}

// requireUser rejects requests without a valid session and stores the user in the context
func (s *HTTPServerAdapter) requireUser(c *gin.Context) {
	current, err := s.userUseCase.CurrentUser(c.Request.Context(), accessToken(c))
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.Set(currentUserKey, *current)
	c.Next()
}

func currentUser(c *gin.Context) user.User {
	value, _ := c.Get(currentUserKey)
	u, _ := value.(user.User)
	return u
}
