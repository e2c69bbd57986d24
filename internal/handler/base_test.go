package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/middleware"
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/server"
)

func TestNewRequestReturnsPrivateCopy(t *testing.T) {
	template := &UpdateItemRequest{}

	first := newRequest(template)
	first.ID = 3
	first.Name = "Widgets"

	second := newRequest(template)

	assert.NotSame(t, template, first)
	assert.NotSame(t, first, second)
	assert.Zero(t, second.ID)
	assert.Empty(t, second.Name)
	assert.Zero(t, template.ID)
}

func TestItemPath(t *testing.T) {
	assert.Equal(t, "/stuff/item/12", ItemPath(12))
}

func TestRequestLogger(t *testing.T) {
	serverLogger := zerolog.Nop()
	h := NewHandler(&server.Server{Logger: &serverLogger})

	newContext := func() echo.Context {
		return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/stuff", nil), httptest.NewRecorder())
	}

	c := newContext()
	assert.Same(t, &serverLogger, h.requestLogger(c))

	requestLogger := zerolog.Nop().With().Str("request_id", "abc").Logger()
	c = newContext()
	c.Set(middleware.LoggerKey, &requestLogger)
	assert.Same(t, &requestLogger, h.requestLogger(c))

	assert.NotNil(t, Handler{}.requestLogger(newContext()))
}
