package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes carried in the envelope's `code` field.
const (
	CodeNotFound         = "NOT_FOUND"
	CodeBadRequest       = "BAD_REQUEST"
	CodeValidation       = "VALIDATION_ERROR"
	CodeInternal         = "INTERNAL_ERROR"
	CodeCORSBlocked      = "CORS_BLOCKED"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
)

// Common error sentinel values
var (
	ErrCORSBlocked      = errors.New("request blocked by CORS policy")
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrRouteNotFound    = errors.New("endpoint not found")
)

type ApiErr struct {
	StatusCode int
	Code       string
	err        error
	Details    string // Additional details about the error
	Field      string // Field that caused the error (for validation errors)
	Cause      error  // The underlying cause of the error
}

func NewApiErr(statusCode int, message string) *ApiErr {
	return &ApiErr{
		StatusCode: statusCode,
		Code:       codeForStatus(statusCode),
		err:        errors.New(message),
	}
}

// implements error interface. this allows us to pass an instance of ApiErr as an argument of type `error`
func (e *ApiErr) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.err.Error(), e.Details)
	}
	return e.err.Error()
}

// GetFullError returns a recursive error message including all causes
func (e *ApiErr) GetFullError() string {
	msg := e.Error()
	if e.Cause != nil {
		var apiErr *ApiErr
		if errors.As(e.Cause, &apiErr) {
			msg = fmt.Sprintf("%s -> %s", msg, apiErr.GetFullError())
		} else {
			msg = fmt.Sprintf("%s -> %s", msg, e.Cause.Error())
		}
	}
	return msg
}

// this function allows us to do the following:
// err := &ApiErr{StatusCode: ..., err: someSentinelError}
// errors.Is(err, someSentinelError) ==> evaluates to true
func (e *ApiErr) Unwrap() error {
	return e.err
}

func NewCORSError(origin string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusForbidden,
		Code:       CodeCORSBlocked,
		err:        ErrCORSBlocked,
		Details:    fmt.Sprintf("Origin '%s' is not allowed by CORS policy", origin),
	}
}

func NewRouteNotFoundError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		Code:       CodeNotFound,
		err:        ErrRouteNotFound,
	}
}

func NewMethodNotAllowedError(method string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusMethodNotAllowed,
		Code:       CodeMethodNotAllowed,
		err:        ErrMethodNotAllowed,
		Details:    method,
	}
}

func codeForStatus(statusCode int) string {
	switch statusCode {
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusBadRequest:
		return CodeBadRequest
	case http.StatusUnprocessableEntity:
		return CodeValidation
	case http.StatusForbidden:
		return CodeCORSBlocked
	case http.StatusMethodNotAllowed:
		return CodeMethodNotAllowed
	default:
		return CodeInternal
	}
}
