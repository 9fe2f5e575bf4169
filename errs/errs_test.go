package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFound(t *testing.T) {
	err := NewNotFound("Project")

	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, CodeNotFound, err.Code)
	assert.Equal(t, "Project not found", err.Error())
	assert.True(t, IsNotFound(err))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsInvalidInput(err))
}

func TestStoreErrorKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStoreError("find documents", "projects", cause)

	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
	assert.Equal(t, CodeInternal, err.Code)
	assert.True(t, IsStoreUnavailable(err))
	assert.Equal(t, "store unavailable: failed to find documents in projects -> connection refused", err.GetFullError())
}

func TestGetFullErrorFollowsNestedApiErr(t *testing.T) {
	inner := NewStoreError("count documents", "services", errors.New("timeout"))
	outer := NewStoreError("seed", "projects", inner)

	assert.True(t, IsStoreUnavailable(outer))
	assert.Equal(t, "store unavailable: failed to seed in projects -> store unavailable: failed to count documents in services -> timeout", outer.GetFullError())
}

func TestRequestErrors(t *testing.T) {
	v := NewValidationError("email", "value is not a valid email address")
	assert.Equal(t, http.StatusUnprocessableEntity, v.StatusCode)
	assert.Equal(t, CodeValidation, v.Code)
	assert.Equal(t, "email", v.Field)
	assert.True(t, IsValidation(v))

	m := NewMalformedPayloadError(errors.New("unexpected EOF"))
	assert.True(t, IsValidation(m))
	assert.Equal(t, "body", m.Field)

	b := NewInvalidInputError("status", "Invalid status")
	assert.Equal(t, http.StatusBadRequest, b.StatusCode)
	assert.Equal(t, CodeBadRequest, b.Code)
	assert.True(t, IsInvalidInput(b))
}

func TestNewApiErrDerivesCode(t *testing.T) {
	assert.Equal(t, CodeBadRequest, NewApiErr(http.StatusBadRequest, "x").Code)
	assert.Equal(t, CodeValidation, NewApiErr(http.StatusUnprocessableEntity, "x").Code)
	assert.Equal(t, CodeInternal, NewApiErr(http.StatusBadGateway, "x").Code)
	assert.Equal(t, CodeCORSBlocked, NewCORSError("https://x").Code)
	assert.Equal(t, CodeMethodNotAllowed, NewMethodNotAllowedError("PATCH").Code)
	assert.Equal(t, CodeNotFound, NewRouteNotFoundError().Code)
}
