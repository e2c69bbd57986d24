package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/config"
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/logger"
)

// bootstrap loads config and builds the root logger shared by every command.
func bootstrap() (*config.Config, *zerolog.Logger, *logger.LoggerService, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	return cfg, &log, loggerService, nil
}
