package models

import (
	"time"

	"gorm.io/gorm"
)

// GiftTier grants one complimentary accessory once the paid subtotal
// reaches the threshold. Thresholds are cumulative: a subtotal past the
// second threshold earns the first two tiers' accessories.
type GiftTier struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Threshold Money          `gorm:"type:decimal(20,2);not null" json:"threshold"`
	ProductID uint           `gorm:"not null;index" json:"product_id"`
	IsActive  bool           `gorm:"not null" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName sets the table name.
func (GiftTier) TableName() string {
	return "gift_tiers"
}
