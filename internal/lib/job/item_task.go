package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// TaskItemChanged is the job type name stored in Redis.
const TaskItemChanged = "inventory:item_changed"

// Actions carried by ItemChangedPayload.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ItemChangedPayload describes one successful write to the stuff table.
type ItemChangedPayload struct {
	Action   string `json:"action"`
	ItemID   int64  `json:"item_id"`
	Item     string `json:"item,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
}

// NewItemChangedTask serializes p into a low-priority task that is retried
// at most 3 times.
func NewItemChangedTask(p ItemChangedPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskItemChanged,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("low"),
		asynq.Timeout(30*time.Second),
	), nil
}
