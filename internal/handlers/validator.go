package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "pixbank/internal/errors"
	"pixbank/internal/validation"
)

// CustomValidator implements echo.Validator on top of the domain rules.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates the echo validator
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator().GetValidate()}
}

// Validate implements the echo.Validator interface. Field errors become
// a VALIDATION_001 envelope so handlers can simply return the error.
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}

	messages := map[string]string{}
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		for _, fe := range fieldErrors {
			messages[fe.Field()] = fmt.Sprintf("failed on %s", fe.Tag())
		}
	}

	return echo.NewHTTPError(http.StatusBadRequest, apperrors.NewValidationError(messages, ""))
}
