package handler

import (
	"net/http"
	"reflect"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/middleware"
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/server"
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/validation"
)

// Handler is embedded by every concrete handler for access to shared deps.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc receives a bound and validated request and returns the
// value the ResponseHandler writes.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// ResponseHandler writes a successful result.
type ResponseHandler interface {
	Handle(c echo.Context, result any) error

	// GetOperation names the handler kind in logs.
	GetOperation() string

	AddAttributes(txn *newrelic.Transaction, result any)
}

// RenderResponseHandler renders result into an HTML page.
type RenderResponseHandler struct {
	status int
	page   string
}

func (h RenderResponseHandler) Handle(c echo.Context, result any) error {
	return c.Render(h.status, h.page, result)
}

func (h RenderResponseHandler) GetOperation() string {
	return "handler_render"
}

func (h RenderResponseHandler) AddAttributes(txn *newrelic.Transaction, result any) {
	if txn != nil {
		txn.AddAttribute("render.page", h.page)
	}
}

// RedirectResponseHandler redirects to the location string in result.
type RedirectResponseHandler struct {
	status int
}

func (h RedirectResponseHandler) Handle(c echo.Context, result any) error {
	return c.Redirect(h.status, result.(string))
}

func (h RedirectResponseHandler) GetOperation() string {
	return "handler_redirect"
}

func (h RedirectResponseHandler) AddAttributes(txn *newrelic.Transaction, result any) {
	if txn == nil {
		return
	}

	if location, ok := result.(string); ok {
		txn.AddAttribute("redirect.location", location)
	}
}

// requestLogger returns the request-scoped logger, falling back to the
// server logger when ContextEnhancer did not run.
func (h Handler) requestLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(middleware.LoggerKey).(*zerolog.Logger); ok {
		return logger
	}

	if h.server != nil && h.server.Logger != nil {
		return h.server.Logger
	}

	return middleware.GetLogger(c)
}

// newRequest returns a private copy of the request template so concurrent
// requests never bind into the same value.
func newRequest[Req validation.Validatable](template Req) Req {
	v := reflect.ValueOf(template)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return template
	}

	fresh := reflect.New(v.Elem().Type())
	fresh.Elem().Set(v.Elem())

	return fresh.Interface().(Req)
}

// handleRequest is the shared pipeline: bind + validate, run the handler,
// write the response. Timings and outcome go to the request logger and the
// New Relic transaction.
func handleRequest[Req validation.Validatable](
	h Handler,
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (any, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	route := c.Path()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
		responseHandler.AddAttributes(txn, nil)
	}

	logger := h.requestLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("method", c.Request().Method).
		Str("route", route).
		Logger()

	logger.Debug().Msg("handling request")

	validationStart := time.Now()

	if err := validation.BindAndValidate(c, req); err != nil {
		validationDuration := time.Since(validationStart)

		logger.Warn().
			Err(err).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("validation.status", "failed")
			txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
		}

		return err
	}

	validationDuration := time.Since(validationStart)
	if txn != nil {
		txn.AddAttribute("validation.status", "success")
		txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
	}

	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		totalDuration := time.Since(start)

		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", totalDuration).
			Msg("handler execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
			txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		}
		return err
	}

	totalDuration := time.Since(start)

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())

		responseHandler.AddAttributes(txn, result)
	}

	logger.Info().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", totalDuration).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// HandleRender wraps handler so its result is rendered as page with a 200.
func HandleRender[Req validation.Validatable, Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
	page string,
	req Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(h, c, newRequest(req), func(c echo.Context, req Req) (any, error) {
			return handler(c, req)
		}, RenderResponseHandler{status: http.StatusOK, page: page})
	}
}

// HandleRedirect wraps handler so its result is used as a 302 Location.
func HandleRedirect[Req validation.Validatable](
	h Handler,
	handler HandlerFunc[Req, string],
	req Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(h, c, newRequest(req), func(c echo.Context, req Req) (any, error) {
			return handler(c, req)
		}, RedirectResponseHandler{status: http.StatusFound})
	}
}
