// Package validate wires go-playground/validator into Echo's Validator
// hook so handlers can call c.Validate(dto) on bound request bodies.
package validate

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator adapts a validator.Validate instance to echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

// New returns a RequestValidator ready to be assigned to echo.Echo.Validator.
func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate checks struct tags on i and converts failures into a 400 HTTP
// error so Echo's default error handler produces a JSON body.
func (v *RequestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
