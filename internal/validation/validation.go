// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules (like
// required fields or maximum lengths) defined in struct tags
// and extracts validation errors into a format the client can
// understand
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/errs"
)

// Validatable is implemented by request types that know how to validate
// themselves, usually by calling Struct(req).
type Validatable interface {
	Validate() error
}

// BindAndValidate binds path, query and form data into payload and
// validates it.
//
// A value that cannot be coerced into its field type (e.g. quantity=abc)
// and a failed rule both return a 400 *errs.HTTPError.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(bindMessage(err), true, nil, nil)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors)
	}

	return nil
}

// bindMessage extracts the client-facing message from an echo bind error.
func bindMessage(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return fmt.Sprint(he.Message)
	}

	return err.Error()
}

func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	fieldErrors := []errs.FieldError{}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error(), fieldErrors
	}

	messages := make([]string, 0, len(validationErrors))

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		msg := fieldMessage(e)

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
		messages = append(messages, field+" "+msg)
	}

	return "Validation failed: " + strings.Join(messages, "; "), fieldErrors
}
