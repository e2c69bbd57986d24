package middleware

import (
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/server"
)

// Middlewares groups every middleware component so the router builds them
// once.
type Middlewares struct {
	// Global: CORS, request logging, recovery, secure headers and the
	// global error handler.
	Global *GlobalMiddlewares

	ContextEnhancer *ContextEnhancer

	// Tracing is a no-op when New Relic is not configured.
	Tracing *TracingMiddleware

	RateLimit *RateLimitMiddleware
}

func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, s.LoggerService.GetApplication()),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
