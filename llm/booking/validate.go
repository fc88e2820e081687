package booking

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json names in field errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidationError reports a model that could not be constructed because a
// field was missing or had the wrong shape.
type ValidationError struct {
	Model  string
	Fields []string
	err    error
}

func newValidationError(model string, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Model: model, err: err}
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		ns := fe.Namespace()
		// drop the root struct name
		if _, rest, ok := strings.Cut(ns, "."); ok {
			ns = rest
		}
		fields = append(fields, ns)
	}
	return &ValidationError{Model: model, Fields: fields, err: err}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("invalid %s: missing or malformed field(s) %s", e.Model, strings.Join(e.Fields, ", "))
	}
	return fmt.Sprintf("invalid %s: %v", e.Model, e.err)
}

func (e *ValidationError) Unwrap() error {
	return e.err
}
