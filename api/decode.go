package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rpupo63/portfolio-backend/errs"
)

const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeBody decodes the JSON request body into dst and validates it. Any
// failure is a 422 validation error.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &typeErr):
			return errs.NewValidationError(typeErr.Field, fmt.Sprintf("expected %s", typeErr.Type))
		case errors.Is(err, io.EOF):
			return errs.NewValidationError("body", "request body is required")
		default:
			return errs.NewMalformedPayloadError(err)
		}
	}
	return validateStruct(dst)
}

func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return errs.NewValidationError(fieldPath(fe), describe(fe))
	}
	return errs.NewMalformedPayloadError(err)
}

// fieldPath drops the struct name from the namespace: "ContactSubmissionInput.email" -> "email".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	case "min":
		return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
