package user

import (
	"weathertracker.app/pkg/errors"
	"weathertracker.app/pkg/validation"
)

// User is a registered account as seen by the rest of the application
type User struct {
	ID    uint
	Login string
}

// RegisterParams is the registration form
type RegisterParams struct {
	Login            string
	Password         string
	RepeatedPassword string
}

// Validate applies the registration rules in order and returns the first violation
func (p RegisterParams) Validate() error {
	if !validation.IsLatinAlphanumeric(p.Login) ||
		!validation.IsLatinAlphanumeric(p.Password) ||
		!validation.IsLatinAlphanumeric(p.RepeatedPassword) {
		return errors.NewValidationError("Username and password must contain only latin letters and digits")
	}
	if p.Password != p.RepeatedPassword {
		return errors.NewValidationError("Passwords must match")
	}
	return nil
}

// LoginParams is the login form
type LoginParams struct {
	Login    string
	Password string
}
