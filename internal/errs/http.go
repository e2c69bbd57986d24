package errs

import (
	"net/http"
)

func statusCode(status int, code *string) string {
	if code != nil {
		return *code
	}

	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// code is optional (defaults to "BAD_REQUEST"); errors carries per-field
// validation failures for forms.
func NewBadRequestError(message string, override bool, code *string, errors []FieldError) *HTTPError {
	return &HTTPError{
		Code:     statusCode(http.StatusBadRequest, code),
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	return &HTTPError{
		Code:     statusCode(http.StatusNotFound, code),
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewTooManyRequestsError creates a 429 Too Many Requests HTTPError.
func NewTooManyRequestsError(message string) *HTTPError {
	return &HTTPError{
		Code:     statusCode(http.StatusTooManyRequests, nil),
		Message:  message,
		Status:   http.StatusTooManyRequests,
		Override: true,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// code is optional (defaults to "INTERNAL_SERVER_ERROR"). The message is the
// generic status text, never the underlying error.
func NewInternalServerError(code *string) *HTTPError {
	return &HTTPError{
		Code:     statusCode(http.StatusInternalServerError, code),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}
