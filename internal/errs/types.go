package errs

import "strings"

// FieldError represents a field-level validation error for a form field.
//
//	{ "field": "quantity", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the error type every handler failure is funneled into.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "ITEM_NOT_FOUND").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: the message is safe to show to the client as-is.
//   - Errors: per-field errors (validation).
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError. It does not compare
// codes or statuses; use errors.As for that.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
