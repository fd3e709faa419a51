package queue

import (
	"encoding/json"

	"github.com/scentora-shop/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskTrackingEvent persists one analytics event.
	TaskTrackingEvent = constants.TaskTrackingEvent
)

// TrackingEventPayload carries one analytics event to the worker.
type TrackingEventPayload struct {
	CartToken string                 `json:"cart_token"`
	EventType string                 `json:"event_type"`
	Payload   map[string]interface{} `json:"payload"`
}

// NewTrackingEventTask builds the asynq task for one event.
func NewTrackingEventTask(payload TrackingEventPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTrackingEvent, data), nil
}
