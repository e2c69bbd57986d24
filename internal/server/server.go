// Package server defines the core Server struct that composes the app's main dependencies.
//
// It contains the initialization logic to spin up the HTTP server
// and handles graceful shutdowns.
//
// It owns the lifecycle of:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - database pool
//   - optional redis client
//   - optional background job worker server (asynq)
//   - http.Server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/nrredis-v9"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/config"
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/database"
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/lib/job"
	loggerPkg "github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/logger"
)

// RedisPingTimeout bounds the startup Redis ping.
const RedisPingTimeout = 5 * time.Second

// Server is the application container that holds shared resources.
//
// It is not the HTTP server itself.
type Server struct {
	Config        *config.Config
	Logger        *zerolog.Logger
	LoggerService *loggerPkg.LoggerService

	// DB holds the PostgreSQL pool wrapper.
	DB *database.Database

	// Redis is nil unless redis.address is configured.
	Redis *redis.Client

	// Job is nil unless Redis is configured.
	Job *job.JobService

	httpServer *http.Server
}

// New constructs a Server and initializes core dependencies.
//
// It does NOT start the HTTP server. That is done in SetupHTTPServer + Start.
//
// A Redis ping failure does not block startup; notifications are disabled
// instead. A job server start failure does.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	db, err := database.New(cfg, logger, loggerService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	server := &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		DB:            db,
	}

	if !cfg.Redis.Enabled() {
		logger.Info().Msg("redis address not configured, item change notifications disabled")
		return server, nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Address,
	})

	if loggerService.GetApplication() != nil {
		redisClient.AddHook(nrredis.NewHook(redisClient.Options()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), RedisPingTimeout)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Error().Err(err).Msg("Failed to connect to Redis, continuing without notifications")
		_ = redisClient.Close()
		return server, nil
	}

	jobService, err := job.NewJobService(logger, cfg)
	if err != nil {
		_ = redisClient.Close()
		db.Close()
		return nil, fmt.Errorf("failed to initialize job service: %w", err)
	}

	if err := jobService.Start(); err != nil {
		jobService.Client.Close()
		_ = redisClient.Close()
		db.Close()
		return nil, err
	}

	server.Redis = redisClient
	server.Job = jobService

	return server, nil
}

// SetupHTTPServer configures the internal net/http server around handler.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It blocks until the server stops.
//
// It requires SetupHTTPServer to be called first.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server, then releases the job server,
// redis client, database pool, and New Relic agent.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
	}

	if s.Job != nil {
		s.Job.Stop()
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			s.Logger.Error().Err(err).Msg("failed to close redis client")
		}
	}

	if err := s.DB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	s.LoggerService.Shutdown()

	return nil
}
