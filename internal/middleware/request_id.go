package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RequestIDHeader carries the request correlation ID in both directions.
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey is the echo context key of the ID.
	RequestIDKey = "request_id"
)

// RequestID reuses an incoming X-Request-ID or generates a UUID, stores it
// in the echo context and echoes it on the response.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			c.Set(RequestIDKey, requestID)
			c.Response().Header().Set(RequestIDHeader, requestID)

			return next(c)
		}
	}
}

// GetRequestID returns the request ID, or "" if RequestID didn't run.
func GetRequestID(c echo.Context) string {
	if requestID, ok := c.Get(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
