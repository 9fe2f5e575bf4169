package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// NewNotFound reports that no record of the given entity matched.
// The message reads "<Entity> not found".
func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		Code:       CodeNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

// NewStoreError wraps a failed round-trip to the document store. The cause is
// kept so the envelope can carry the original detail.
func NewStoreError(operation, collection string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternal,
		err:        ErrStoreUnavailable,
		Details:    fmt.Sprintf("failed to %s in %s", operation, collection),
		Cause:      cause,
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsStoreUnavailable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}
