package common

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

const CodeInvalidPayload = "invalid_payload"

var ErrInvalidPayload = errors.New("invalid payload")

var validate = validator.New()

// Validate checks payload against its `validate` struct tags.
func Validate(payload interface{}) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return NewAppError(CodeInvalidPayload, validationErrors.Error(), ErrInvalidPayload)
	}
	return err
}
