package models

import (
	"time"
)

// Setting is a key/value JSON row for runtime-editable storefront config.
type Setting struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Key       string    `gorm:"uniqueIndex;not null" json:"key"`
	ValueJSON JSON      `gorm:"type:json" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (Setting) TableName() string {
	return "settings"
}
