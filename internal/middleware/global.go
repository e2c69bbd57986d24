package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/errs"
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/server"
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/sqlerr"
)

// GlobalMiddlewares groups the global middleware and the error handler.
type GlobalMiddlewares struct {
	server *server.Server
}

func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
	})
}

// RequestLogger writes one "API" line per request, at a level chosen by
// the final status.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status

			// The error handler has not written the response yet when a
			// handler returns an error, so v.Status is still 200.
			// https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
			if v.Error != nil {
				statusCode = statusOf(v.Error)
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// statusOf predicts the status GlobalErrorHandler will write for err.
func statusOf(err error) int {
	var httpErr *errs.HTTPError
	var echoErr *echo.HTTPError

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Status
	case errors.As(err, &echoErr):
		return echoErr.Code
	case errors.As(sqlerr.HandleError(err), &httpErr):
		return httpErr.Status
	default:
		return http.StatusInternalServerError
	}
}

// GlobalErrorHandler is the single place handler errors become responses.
//
// Errors that are not already an *errs.HTTPError are classified first:
// unknown routes become a 404 and every store error becomes a 500 through
// sqlerr. A 500
// carries the underlying error text outside production and the generic
// status text in production.
//
// The body is plain text unless the client accepts JSON, in which case it
// is the errs.HTTPError shape.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	originalErr := err

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			if echoErr.Code == http.StatusNotFound {
				err = errs.NewNotFoundError("Route not found", false, nil)
			}
		} else {
			err = sqlerr.HandleError(err)
		}
	}

	var echoErr *echo.HTTPError
	var status int
	var code string
	var message string
	var fieldErrors []errs.FieldError
	override := false

	switch {
	case errors.As(err, &httpErr):
		status = httpErr.Status
		code = httpErr.Code
		message = httpErr.Message
		fieldErrors = httpErr.Errors
		override = httpErr.Override

	case errors.As(err, &echoErr):
		status = echoErr.Code
		code = errs.MakeUpperCaseWithUnderscores(http.StatusText(status))

		if msg, ok := echoErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(echoErr.Code)
		}

	default:
		status = http.StatusInternalServerError
		code = errs.MakeUpperCaseWithUnderscores(http.StatusText(status))
		message = http.StatusText(status)
	}

	if status >= http.StatusInternalServerError && !global.server.Config.Observability.IsProduction() {
		message = originalErr.Error()
	}

	logger := GetLogger(c)

	var event *zerolog.Event
	if status >= http.StatusInternalServerError {
		event = logger.Error().Stack()
	} else {
		event = logger.Warn()
	}

	if detail := sqlerr.Describe(originalErr); detail != "" {
		event = event.Str("db_error", detail)
	}

	event.
		Err(originalErr).
		Int("status", status).
		Str("error_code", code).
		Msg(message)

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}

	if wantsJSON(c) {
		_ = c.JSON(status, errs.HTTPError{
			Code:     code,
			Message:  message,
			Status:   status,
			Override: override,
			Errors:   fieldErrors,
		})
		return
	}

	_ = c.String(status, message)
}

func wantsJSON(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}
