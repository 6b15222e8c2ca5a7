// Package validator plugs go-playground/validator into Echo's request
// validation hook.
package validator

import (
	playgroundvalidator "github.com/go-playground/validator/v10"

	domainerrors "github.com/oliviahealth/Careplan/internal/domain/errors"
)

// Validator wraps a shared validator instance.
type Validator struct {
	validate *playgroundvalidator.Validate
}

// New creates the Echo validator used for request DTOs.
func New() *Validator {
	return &Validator{
		validate: playgroundvalidator.New(playgroundvalidator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Failures surface as the domain's
// validation error so the central error handler renders them uniformly.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
