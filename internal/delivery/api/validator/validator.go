// Package validator adapts go-playground/validator to echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"lostfound/internal/domain/entity"

	playground "github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *playground.Validate
}

// New returns a validator that reports fields by their JSON names and knows the "category" tag.
func New() *Validator {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})
	_ = v.RegisterValidation("category", func(fl playground.FieldLevel) bool {
		_, ok := entity.ParseCategory(fl.Field().String())

		return ok
	})

	return &Validator{validate: v}
}

// Validate returns the first failing field as a readable message.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(playground.ValidationErrors)
	if !ok || len(fieldErrs) == 0 {
		return err
	}

	return fieldError(fieldErrs[0])
}

// ValidationError names the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func fieldError(fe playground.FieldError) error {
	// Namespace is Struct.json.path; drop the struct name.
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	var reason string
	switch fe.Tag() {
	case "required":
		reason = field + " is required"
	case "category":
		reason = field + " must be one of: " + strings.Join(entity.CategoryNames(), ", ")
	case "contains", "email":
		reason = field + " must be a valid email address"
	default:
		reason = fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}

	return &ValidationError{Field: field, Reason: reason}
}
