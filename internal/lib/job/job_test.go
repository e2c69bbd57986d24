package job

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItemChangedTask(t *testing.T) {
	task, err := NewItemChangedTask(ItemChangedPayload{
		Action:   ActionCreated,
		ItemID:   7,
		Item:     "Widgets",
		Quantity: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, TaskItemChanged, task.Type())

	var p ItemChangedPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))

	assert.Equal(t, int64(7), p.ItemID)
	assert.Equal(t, ActionCreated, p.Action)
}

func TestHandleItemChangedTaskWithoutEmail(t *testing.T) {
	logger := zerolog.Nop()
	j := &JobService{logger: &logger}

	task, err := NewItemChangedTask(ItemChangedPayload{Action: ActionDeleted, ItemID: 3})
	require.NoError(t, err)

	assert.NoError(t, j.handleItemChangedTask(context.Background(), task))
}

func TestHandleItemChangedTaskBadPayload(t *testing.T) {
	logger := zerolog.Nop()
	j := &JobService{logger: &logger}

	err := j.handleItemChangedTask(context.Background(), asynq.NewTask(TaskItemChanged, []byte("{")))

	assert.ErrorContains(t, err, "unmarshal")
}
