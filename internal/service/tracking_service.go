package service

import (
	"github.com/scentora-shop/internal/logger"
	"github.com/scentora-shop/internal/queue"
)

// TrackingService emits analytics events. Emission is best effort: a
// failed enqueue is logged and swallowed so cart mutations never fail on
// analytics.
type TrackingService struct {
	queueClient *queue.Client
}

// NewTrackingService creates a tracking service.
func NewTrackingService(queueClient *queue.Client) *TrackingService {
	return &TrackingService{queueClient: queueClient}
}

// Emit pushes one event to the worker queue, fire and forget.
func (s *TrackingService) Emit(cartToken, eventType string, payload map[string]interface{}) {
	if s == nil || s.queueClient == nil {
		return
	}
	err := s.queueClient.EnqueueTrackingEvent(queue.TrackingEventPayload{
		CartToken: cartToken,
		EventType: eventType,
		Payload:   payload,
	})
	if err != nil {
		logger.Warnw("tracking_emit_failed",
			"event_type", eventType,
			"cart_token", cartToken,
			"error", err,
		)
	}
}
