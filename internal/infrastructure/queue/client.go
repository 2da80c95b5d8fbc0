package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"palette-backend/pkg/logger"
)

// Client enqueues background tasks over the shared Redis broker.
type Client struct {
	asynq *asynq.Client
}

func NewClient(redisAddr, password string, db int) *Client {
	return &Client{
		asynq: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: password,
			DB:       db,
		}),
	}
}

// EnqueuePaletteEmail schedules delivery of a palette summary email.
func (c *Client) EnqueuePaletteEmail(ctx context.Context, paletteID int64, email string) error {
	payload, err := json.Marshal(PaletteEmailPayload{PaletteID: paletteID, Email: email})
	if err != nil {
		return fmt.Errorf("marshal palette email payload: %w", err)
	}

	task := asynq.NewTask(TypePaletteEmail, payload)
	info, err := c.asynq.EnqueueContext(ctx, task, asynq.MaxRetry(5))
	if err != nil {
		logger.Error("Failed to enqueue palette email", err)
		return fmt.Errorf("enqueue palette email: %w", err)
	}

	logger.Info("Enqueued palette email task", map[string]interface{}{
		"task_id": info.ID,
		"queue":   info.Queue,
	})
	return nil
}

func (c *Client) Close() error {
	return c.asynq.Close()
}
