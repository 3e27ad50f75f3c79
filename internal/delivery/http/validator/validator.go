// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"net/http"

	domainerrors "blog/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator instance for use as echo.Echo's Validator.
type echoValidator struct {
	validate *playground.Validate
}

// New constructs the Echo request validator.
func New() *echoValidator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags on a bound request DTO. Failures map to an
// AppError so the error middleware renders a 400.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.NewBaseError(
			http.StatusBadRequest,
			"VALIDATION_FAILED",
			"Invalid request payload.",
			err.Error(),
		)
	}

	return nil
}
