// Package validator adapts go-playground validation to Echo's Validator
// interface.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// Validator wraps a validator instance for request struct validation.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with struct tag validation enabled.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
