// Package validation provides input validation for calculator requests.
// Range checks are declared as validator tags on request structs; the
// helpers here translate violations into field-level messages suitable
// for inline display.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report field names using their json tags so messages line up with
	// the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error holds all field violations for one request.
type Error struct {
	Fields []FieldError
}

// Error implements the error interface.
func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// Struct validates a request struct against its validator tags. It returns
// nil when the struct is valid and an *Error otherwise.
func Struct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validate struct: %w", err)
	}

	fields := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return &Error{Fields: fields}
}

// AsError returns the *Error inside err, or nil if err is not a
// validation error.
func AsError(err error) *Error {
	if verr, ok := err.(*Error); ok {
		return verr
	}
	return nil
}

// messageFor returns a human-readable message for a single violation.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lt":
		return "must be less than " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gtfield":
		return "must be greater than " + fe.Param()
	case "ltfield":
		return "must be less than " + fe.Param()
	case "gtefield":
		return "must be at least " + fe.Param()
	default:
		return "is invalid"
	}
}
