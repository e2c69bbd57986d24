package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/config"
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/errs"
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/server"
)

func newTestServer(env string) *server.Server {
	cfg := config.DefaultConfig()
	cfg.Primary.Env = env
	cfg.Observability.Environment = env

	logger := zerolog.Nop()

	return &server.Server{Config: cfg, Logger: &logger}
}

func runErrorHandler(t *testing.T, s *server.Server, err error, accept string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/stuff/item/1", nil)
	if accept != "" {
		req.Header.Set(echo.HeaderAccept, accept)
	}
	rec := httptest.NewRecorder()

	NewGlobalMiddlewares(s).GlobalErrorHandler(err, e.NewContext(req, rec))

	return rec
}

func TestGlobalErrorHandlerNotFoundPlainText(t *testing.T) {
	code := "ITEM_NOT_FOUND"
	err := errs.NewNotFoundError("No item found with id = 9", true, &code)

	rec := runErrorHandler(t, newTestServer("local"), err, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No item found with id = 9", rec.Body.String())
}

func TestGlobalErrorHandlerJSON(t *testing.T) {
	err := errs.NewBadRequestError("Validation failed", true, nil, []errs.FieldError{{Field: "name", Error: "is required"}})

	rec := runErrorHandler(t, newTestServer("local"), err, echo.MIMEApplicationJSON)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{
		"code": "BAD_REQUEST",
		"message": "Validation failed",
		"status": 400,
		"override": true,
		"errors": [{"field": "name", "error": "is required"}]
	}`, rec.Body.String())
}

func TestGlobalErrorHandlerInternalErrorOutsideProduction(t *testing.T) {
	err := fmt.Errorf("listing items: %w", errors.New(`relation "stuff" does not exist`))

	rec := runErrorHandler(t, newTestServer("local"), err, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `relation "stuff" does not exist`)
}

func TestGlobalErrorHandlerInternalErrorInProduction(t *testing.T) {
	err := errors.New(`password authentication failed for user "inventory"`)

	rec := runErrorHandler(t, newTestServer("production"), err, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), rec.Body.String())
}

func TestGlobalErrorHandlerPgErrorIsInternal(t *testing.T) {
	err := fmt.Errorf("creating item: %w", &pgconn.PgError{
		Code:      "22003",
		Severity:  "ERROR",
		TableName: "stuff",
		Message:   "integer out of range",
	})

	rec := runErrorHandler(t, newTestServer("local"), err, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "integer out of range")

	rec = runErrorHandler(t, newTestServer("local"), err, echo.MIMEApplicationJSON)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"STUFF_INVALID"`)
	assert.Contains(t, rec.Body.String(), "integer out of range")

	rec = runErrorHandler(t, newTestServer("production"), err, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), rec.Body.String())
}

func TestGlobalErrorHandlerUnknownRoute(t *testing.T) {
	rec := runErrorHandler(t, newTestServer("local"), echo.ErrNotFound, echo.MIMEApplicationJSON)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Route not found")
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusTooManyRequests, statusOf(errs.NewTooManyRequestsError("slow down")))
	assert.Equal(t, http.StatusMethodNotAllowed, statusOf(echo.ErrMethodNotAllowed))
	assert.Equal(t, http.StatusInternalServerError, statusOf(errors.New("boom")))
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	handler := RequestID()(func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()

	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, "abc-123", rec.Body.String())
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))

	rec = httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
}

func TestRateLimitDeniesOverLimit(t *testing.T) {
	s := newTestServer("local")
	s.Config.Server.RateLimit = 1

	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(s).GlobalErrorHandler
	e.Use(NewRateLimitMiddleware(s).Limit())
	e.GET("/stuff", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for range 3 {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stuff", nil))
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Contains(t, codes, http.StatusTooManyRequests)
}
