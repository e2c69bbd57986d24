// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data
package service

import (
	"context"

	"github.com/rs/zerolog"
)

// loggerFrom prefers the request-scoped logger carried by ctx.
func loggerFrom(ctx context.Context, fallback *zerolog.Logger) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}

	return fallback
}
