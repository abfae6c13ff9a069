package api

import (
	stderrors "errors"

	"github.com/go-playground/validator/v10"
	"weathertracker.app/pkg/errors"
)

const latinOnlyMessage = "Username and password must contain only latin letters and digits"

// RegisterForm is the registration form body
type RegisterForm struct {
	Login            string `form:"login" binding:"required,latin"`
	Password         string `form:"password" binding:"required,latin"`
	RepeatedPassword string `form:"repeated_password" binding:"required,latin"`
}

// LoginForm is the sign-in form body
type LoginForm struct {
	Login    string `form:"login" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// LocationForm is the add-location form body
type LocationForm struct {
	Name    string  `form:"name" binding:"required"`
	Lat     float64 `form:"lat" binding:"latitude"`
	Lon     float64 `form:"lon" binding:"longitude"`
	Country string  `form:"country"`
	State   string  `form:"state"`
}

// DeleteLocationForm is the delete button form body
type DeleteLocationForm struct {
	LocationID   uint   `form:"location_id" binding:"required"`
	LocationName string `form:"location_name"`
	CurrentPage  int    `form:"current_page"`
}

// DashboardQuery holds the dashboard query string. CurrentPage is the sticky page after a delete.
type DashboardQuery struct {
	Page        int  `form:"page,default=1"`
	CurrentPage *int `form:"current_page"`
}

// registrationMessage turns a binding failure into the message shown on the registration page
func registrationMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) && len(validationErrs) > 0 {
		if validationErrs[0].Tag() == "latin" {
			return latinOnlyMessage
		}
		return "All fields are required"
	}
	return "Invalid registration form"
}

// locationFormError describes why an add-location form was rejected
func locationFormError(err error) error {
	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) && len(validationErrs) > 0 {
		switch validationErrs[0].Field() {
		case "Lat":
			return errors.NewValidationError("latitude must be between -90 and 90")
		case "Lon":
			return errors.NewValidationError("longitude must be between -180 and 180")
		case "Name":
			return errors.NewValidationError("location name is required")
		}
	}
	return errors.NewValidationError("invalid location form")
}

// messageOf returns the user-facing message carried by err
func messageOf(err error) string {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
