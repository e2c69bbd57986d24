package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/errs"
)

type formRequest struct {
	Name     string `form:"name" validate:"required,max=5"`
	Quantity *int   `form:"quantity" validate:"required"`
}

func (r *formRequest) Validate() error {
	return Struct(r)
}

func postForm(form url.Values) echo.Context {
	req := httptest.NewRequest(http.MethodPost, "/stuff", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidate(t *testing.T) {
	var payload formRequest

	err := BindAndValidate(postForm(url.Values{"name": {"Nut"}, "quantity": {"3"}}), &payload)
	require.NoError(t, err)

	assert.Equal(t, "Nut", payload.Name)
	require.NotNil(t, payload.Quantity)
	assert.Equal(t, 3, *payload.Quantity)
}

func TestBindAndValidateCoercionFailure(t *testing.T) {
	var payload formRequest

	err := BindAndValidate(postForm(url.Values{"name": {"Nut"}, "quantity": {"lots"}}), &payload)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestBindAndValidateRules(t *testing.T) {
	var payload formRequest

	err := BindAndValidate(postForm(url.Values{"name": {"Toolong"}}), &payload)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "name", Error: "must not exceed 5 characters"},
		{Field: "quantity", Error: "is required"},
	}, httpErr.Errors)
	assert.Contains(t, httpErr.Message, "quantity is required")
}

type failingRequest struct{}

func (r *failingRequest) Validate() error {
	return errors.New("quantity must be positive")
}

func TestBindAndValidatePlainError(t *testing.T) {
	err := BindAndValidate(postForm(url.Values{}), &failingRequest{})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "quantity must be positive", httpErr.Message)
}
