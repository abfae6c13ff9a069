package api

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"weathertracker.app/pkg/validation"
)

var registerOnce sync.Once

// registerValidators adds the custom tags used by the form structs to gin's validator
func registerValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		err = v.RegisterValidation("latin", func(fl validator.FieldLevel) bool {
			return validation.IsLatinAlphanumeric(fl.Field().String())
		})
	})
	return err
}
