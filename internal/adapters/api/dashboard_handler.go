package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weathertracker.app/internal/adapters/infrastructure"
	"weathertracker.app/internal/core/location"
	"weathertracker.app/pkg/errors"
)

// getDashboard handles GET / requests
func (s *HTTPServerAdapter) getDashboard(c *gin.Context) {
	var query DashboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, errors.NewValidationError("page must be an integer"))
		return
	}

	page, err := s.locationUseCase.GetResultLocations(c.Request.Context(), location.ResultParams{
		Page:        query.Page,
		CurrentPage: query.CurrentPage,
		Token:       accessToken(c),
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	s.render(c, http.StatusOK, "index.html", pageData{
		Page:  page,
		Error: s.takeFlash(c),
	})
}

// getHealth handles GET /healthz requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())

	code := http.StatusOK
	if !infrastructure.IsHealthy(results) {
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":     infrastructure.OverallStatus(results),
		"components": results,
	})
}

// getMetrics handles GET /api/metrics requests
func (s *HTTPServerAdapter) getMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"cache": s.cacheMetrics.GetStats(),
	})
}
