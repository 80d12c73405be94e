// Package validation runs the required-field rules shared by every domain
// service.
package validation

import (
	"strings"

	domainerrors "freightdesk/internal/domain/errors"
	"freightdesk/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a go-playground validator configured for entity structs.
type Validator struct {
	validate *validator.Validate
}

// New creates the shared entity validator.
func New() *Validator {
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Struct checks every required field of the entity and reports ALL
// violations at once, joined by "; ", as a 400 validation error.
// A nil return means the entity is safe to persist.
func (v *Validator) Struct(e any) error {
	err := v.validate.Struct(e)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		// InvalidValidationError: the caller passed something that is not
		// a struct. That is a programming error, not client input.
		return errors.Wrap(err, "entity validation")
	}

	messages := make([]string, 0, len(violations))
	for _, violation := range violations {
		messages = append(messages, fieldMessage(violation))
	}

	return domainerrors.NewValidationError(strings.Join(messages, "; "))
}

func fieldMessage(violation validator.FieldError) string {
	switch violation.Tag() {
	case "required":
		return violation.Field() + " should not be empty"
	default:
		return violation.Field() + " is invalid"
	}
}
