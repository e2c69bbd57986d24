package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared; validator.Validate caches struct metadata and is
// safe for concurrent use.
var validate = validator.New()

// Struct runs the struct-tag rules on v.
func Struct(v any) error {
	return validate.Struct(v)
}

// fieldMessage turns one failed rule into a form-friendly message.
func fieldMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"

	case "min":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", err.Param())
		}
		return fmt.Sprintf("must be at least %s", err.Param())

	case "max":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", err.Param())
		}
		return fmt.Sprintf("must not exceed %s", err.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())

	case "email":
		return "must be a valid email address"

	default:
		field := strings.ToLower(err.Field())
		if err.Param() != "" {
			return fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
		}
		return fmt.Sprintf("%s: %s", field, err.Tag())
	}
}
