// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "rental/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator validates request structs by their `validate` tags.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names so details match the request body.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}

		return name
	})

	return &Validator{validate: v}
}

// Validate implements echo.Validator. Failures are reported as ErrValidationFailed
// with one "field: rule" entry per violation.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	violations := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(violations, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	if fe.Param() == "" {
		return fmt.Sprintf("%s: %s", field, fe.Tag())
	}

	return fmt.Sprintf("%s: %s=%s", field, fe.Tag(), fe.Param())
}
