package entity

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/limbo/basetracker/pkg/timeutil"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// InitValidator registers the custom tags used on entity structs. Safe to call many times.
func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		validate.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			return timeutil.ValidMinuteKey(fl.Field().String())
		})
		validate.RegisterValidation("datekey", func(fl validator.FieldLevel) bool {
			return timeutil.ValidDateKey(fl.Field().String())
		})
		validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			return Category(fl.Field().String()).Valid()
		})
	})
}

// Validate checks v against its struct tags and joins every field error.
func Validate(v any) error {
	InitValidator()
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		err = errors.New("validation error")
		for _, fieldErr := range validationErrors {
			err = errors.Join(err, fieldErr)
		}
		return err
	}
	return errors.New("validation unexpected error: " + err.Error())
}

// FieldErrors lists the struct field names that failed validation.
func FieldErrors(v any) []string {
	InitValidator()
	var validationErrors validator.ValidationErrors
	if !errors.As(validate.Struct(v), &validationErrors) {
		return nil
	}
	fields := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, fieldErr.Field())
	}
	return fields
}
