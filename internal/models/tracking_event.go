package models

import (
	"time"
)

// TrackingEvent is one analytics event persisted by the worker. The cart
// engine only enqueues; failures there never surface to the shopper.
type TrackingEvent struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CartToken string    `gorm:"type:varchar(64);index" json:"cart_token"`
	EventType string    `gorm:"type:varchar(50);not null;index" json:"event_type"`
	Payload   JSON      `gorm:"type:json" json:"payload"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName sets the table name.
func (TrackingEvent) TableName() string {
	return "tracking_events"
}
