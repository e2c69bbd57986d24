package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// handleItemChangedTask logs the change and, when configured, emails the
// notify address. Returning an error makes Asynq retry the task.
func (j *JobService) handleItemChangedTask(ctx context.Context, t *asynq.Task) error {
	var p ItemChangedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal item changed payload: %w", err)
	}

	logger := j.logger.With().
		Str("type", TaskItemChanged).
		Str("action", p.Action).
		Int64("item_id", p.ItemID).
		Logger()

	logger.Info().
		Str("item", p.Item).
		Int("quantity", p.Quantity).
		Msg("Processing item change")

	if j.email == nil {
		return nil
	}

	link := ""
	if p.Action != ActionDeleted {
		link = fmt.Sprintf("%s/stuff/item/%d", j.baseURL, p.ItemID)
	}

	if err := j.email.SendItemChangedEmail(j.notifyEmail, p.Action, p.ItemID, p.Item, p.Quantity, link); err != nil {
		logger.Error().Err(err).Msg("Failed to send item change email")
		return err
	}

	logger.Info().Str("to", j.notifyEmail).Msg("Sent item change email")

	return nil
}
