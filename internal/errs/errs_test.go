package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores("Not Found"))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)))
}

func TestNotFoundErrorCode(t *testing.T) {
	code := "ITEM_NOT_FOUND"

	assert.Equal(t, "NOT_FOUND", NewNotFoundError("gone", false, nil).Code)
	assert.Equal(t, code, NewNotFoundError("gone", false, &code).Code)
}

func TestHTTPErrorMatching(t *testing.T) {
	err := fmt.Errorf("detail: %w", NewNotFoundError("No item found with id = 7", true, nil))

	assert.True(t, errors.Is(err, &HTTPError{}))

	var httpErr *HTTPError
	if assert.True(t, errors.As(err, &httpErr)) {
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, "No item found with id = 7", httpErr.Error())
	}
}

func TestWithMessage(t *testing.T) {
	base := NewBadRequestError("Validation failed", true, nil, []FieldError{{Field: "name", Error: "is required"}})
	copied := base.WithMessage("nope")

	assert.Equal(t, "Validation failed", base.Message)
	assert.Equal(t, "nope", copied.Message)
	assert.Equal(t, base.Errors, copied.Errors)
	assert.Equal(t, http.StatusBadRequest, copied.Status)
}

func TestNewInternalServerErrorCode(t *testing.T) {
	code := "STUFF_INVALID"

	withCode := NewInternalServerError(&code)
	assert.Equal(t, "STUFF_INVALID", withCode.Code)
	assert.Equal(t, http.StatusInternalServerError, withCode.Status)
	assert.Equal(t, "Internal Server Error", withCode.Message)

	assert.Equal(t, "INTERNAL_SERVER_ERROR", NewInternalServerError(nil).Code)
}
