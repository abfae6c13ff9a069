package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"weathertracker.app/internal/core/location"
	"weathertracker.app/pkg/errors"
)

// searchLocations handles GET /locations requests
func (s *HTTPServerAdapter) searchLocations(c *gin.Context) {
	city := c.Query("city")

	results, err := s.locationUseCase.SearchLocations(c.Request.Context(), city)
	if err != nil {
		s.handleError(c, err)
		return
	}

	s.takeFlash(c)
	s.render(c, http.StatusOK, "locations.html", pageData{
		Title:     "Search",
		City:      strings.TrimSpace(city),
		Locations: results,
	})
}

// addLocation handles POST /add_location requests
func (s *HTTPServerAdapter) addLocation(c *gin.Context) {
	var form LocationForm
	if err := c.ShouldBind(&form); err != nil {
		s.handleError(c, locationFormError(err))
		return
	}

	owner := currentUser(c)
	saved, err := s.locationUseCase.AddLocation(c.Request.Context(), owner, location.Form{
		Name:    form.Name,
		Lat:     form.Lat,
		Lon:     form.Lon,
		Country: form.Country,
		State:   form.State,
	})
	switch {
	case errors.IsDuplicateLocationError(err):
		s.setFlash(c, messageOf(err))
	case err != nil:
		s.handleError(c, err)
		return
	default:
		slog.Info("Location saved", "user", owner.Login, "location", saved.Name, "request_id", requestID(c))
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// deleteLocation handles POST /delete_location requests and returns to the page the user was on
func (s *HTTPServerAdapter) deleteLocation(c *gin.Context) {
	var form DeleteLocationForm
	if err := c.ShouldBind(&form); err != nil {
		s.handleError(c, errors.NewValidationError("location_id is required"))
		return
	}

	owner := currentUser(c)
	if err := s.locationUseCase.DeleteLocation(c.Request.Context(), owner, form.LocationID); err != nil {
		s.handleError(c, err)
		return
	}

	slog.Info("Location deleted", "user", owner.Login, "location", form.LocationName, "request_id", requestID(c))
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/?current_page=%d", form.CurrentPage))
}
