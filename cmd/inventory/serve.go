package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/database"
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/handler"
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/repository"
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/router"
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/server"
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/service"
)

// shutdownTimeout bounds graceful shutdown after a signal.
const shutdownTimeout = 30 * time.Second

func newServeCommand() *cobra.Command {
	var skipMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), skipMigrate)
		},
	}

	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not apply migrations before serving")

	return cmd
}

func runServe(parent context.Context, skipMigrate bool) error {
	cfg, log, loggerService, err := bootstrap()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(contextOrBackground(parent), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !skipMigrate {
		if err := database.Migrate(ctx, log, cfg); err != nil {
			loggerService.Shutdown()
			return err
		}
	}

	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		loggerService.Shutdown()
		return err
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewServices(srv, repos)
	if err != nil {
		return errors.Join(err, shutdown(srv))
	}

	r, err := router.NewRouter(srv, handler.NewHandlers(srv, services))
	if err != nil {
		return errors.Join(err, shutdown(srv))
	}

	srv.SetupHTTPServer(r)

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	return awaitServer(ctx, log, serveErr, func() error { return shutdown(srv) })
}

// awaitServer blocks until the server fails or ctx is cancelled, then runs
// release. A serve failure is returned even when release succeeds.
func awaitServer(ctx context.Context, log *zerolog.Logger, serveErr <-chan error, release func() error) error {
	var runErr error

	select {
	case runErr = <-serveErr:
		if runErr != nil {
			log.Error().Err(runErr).Msg("server stopped unexpectedly")
		}
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	if err := release(); err != nil {
		return errors.Join(runErr, err)
	}

	if runErr != nil {
		return runErr
	}

	log.Info().Msg("server stopped")

	return nil
}

// shutdown releases every resource srv holds within shutdownTimeout.
func shutdown(srv *server.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(ctx)
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
