// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"gramsaarthi/internal/domain/entity"
	domainerrors "gramsaarthi/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a configured validator instance.
type Validator struct {
	validate *validator.Validate
}

// New builds the request validator, registering the custom "role" rule for the
// closed role enum.
func New() *Validator {
	validate := validator.New()

	// Struct fields typed entity.Role need a custom rule; "oneof" only sees strings.
	_ = validate.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		role, ok := fl.Field().Interface().(entity.Role)
		if !ok {
			return false
		}

		return role.IsValid()
	})

	return &Validator{validate: validate}
}

// Validate implements echo.Validator. Failures surface as BadRequest with the
// offending constraint in the details.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
