// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *playground.Validate
}

// New creates a request validator for echo.
func New() echo.Validator {
	return &echoValidator{validate: playground.New()}
}

// Validate checks the struct's validate tags; handlers render the error.
func (v *echoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
