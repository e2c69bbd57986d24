// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue:
//   - You enqueue tasks (producer) using asynq.Client.
//   - A server runs workers that process those tasks (consumer) using asynq.Server.
package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/config"
	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/lib/email"
)

// JobService holds the Asynq client (enqueue) and server (worker execution).
type JobService struct {
	Client *asynq.Client

	server *asynq.Server
	logger *zerolog.Logger

	// email is nil when notification emails are not configured.
	email       *email.Client
	notifyEmail string
	baseURL     string
}

// NewJobService creates a JobService on the Redis address from cfg.
//
// Queue weights give "critical" tasks the larger share of the 10 workers.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) (*JobService, error) {
	redisAddr := cfg.Redis.Address

	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr: redisAddr,
	})

	server := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	j := &JobService{
		Client:  client,
		server:  server,
		logger:  logger,
		baseURL: fmt.Sprintf("http://localhost:%s", cfg.Server.Port),
	}

	if cfg.Integration.EmailEnabled() {
		emailClient, err := email.NewClient(cfg, logger)
		if err != nil {
			client.Close()
			return nil, err
		}

		j.email = emailClient
		j.notifyEmail = cfg.Integration.NotifyEmail
	}

	return j, nil
}

// Start registers task handlers and starts the worker server in the
// background.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()

	mux.HandleFunc(TaskItemChanged, j.handleItemChangedTask)

	j.logger.Info().Msg("Starting background job server")

	if err := j.server.Start(mux); err != nil {
		return err
	}

	return nil
}

// Stop gracefully stops the job server and closes client resources.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	j.server.Shutdown()
	j.Client.Close()
}

// NotifyItemChanged enqueues an item-change task.
func (j *JobService) NotifyItemChanged(ctx context.Context, p ItemChangedPayload) error {
	task, err := NewItemChangedTask(p)
	if err != nil {
		return err
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue %s: %w", TaskItemChanged, err)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Str("action", p.Action).
		Int64("item_id", p.ItemID).
		Msg("enqueued item change notification")

	return nil
}
