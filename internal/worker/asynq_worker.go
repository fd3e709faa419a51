package worker

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/scentora-shop/internal/logger"
	"github.com/scentora-shop/internal/models"
	"github.com/scentora-shop/internal/provider"
	"github.com/scentora-shop/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer processes asynchronous tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates a consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{Container: c}
}

// Register wires task handlers into the mux.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskTrackingEvent, c.handleTrackingEvent)
}

func (c *Consumer) handleTrackingEvent(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_tracking_event_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.TrackingEventPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_tracking_event_unmarshal_failed", "error", err)
		return err
	}
	if strings.TrimSpace(payload.EventType) == "" {
		logger.Debugw("worker_tracking_event_skip_empty_type", "cart_token", payload.CartToken)
		return nil
	}

	event := &models.TrackingEvent{
		CartToken: payload.CartToken,
		EventType: payload.EventType,
		Payload:   models.JSON(payload.Payload),
	}
	if err := c.TrackingEventRepo.Create(event); err != nil {
		logger.Warnw("worker_tracking_event_store_failed",
			"event_type", payload.EventType,
			"cart_token", payload.CartToken,
			"error", err,
		)
		return err
	}
	return nil
}
