package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Request & Input-Validation Errors
var (
	// ErrValidation marks input whose shape or type is wrong (422).
	ErrValidation = errors.New("validation error")
	// ErrInvalidInput marks structurally valid input rejected by a business rule (400).
	ErrInvalidInput = errors.New("invalid input")
)

func NewValidationError(field, reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnprocessableEntity,
		Code:       CodeValidation,
		err:        ErrValidation,
		Details:    fmt.Sprintf("%s: %s", field, reason),
		Field:      field,
	}
}

func NewMalformedPayloadError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnprocessableEntity,
		Code:       CodeValidation,
		err:        ErrValidation,
		Details:    "malformed request body",
		Cause:      cause,
		Field:      "body",
	}
}

func NewInvalidInputError(field, reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		Code:       CodeBadRequest,
		err:        ErrInvalidInput,
		Details:    reason,
		Field:      field,
	}
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
