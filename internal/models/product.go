package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a catalog entry: a perfume, a kit or an accessory.
type Product struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	CategoryID       uint           `gorm:"not null;index" json:"category_id"`
	Slug             string         `gorm:"uniqueIndex;not null" json:"slug"`
	Name             string         `gorm:"not null" json:"name"`
	ShortDescription string         `gorm:"type:text" json:"short_description"`
	Inspiration      string         `gorm:"type:varchar(255)" json:"inspiration"` // "inspired by" display line
	Size             string         `gorm:"type:varchar(20)" json:"size"`         // e.g. 50ml, 20ml
	PriceAmount      Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price_amount"`
	Images           StringArray    `gorm:"type:json" json:"images"`
	ScentTags        StringArray    `gorm:"type:json" json:"scent_tags"` // scent families for quiz matching
	IsActive         bool           `gorm:"not null;index" json:"is_active"`
	SortOrder        int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt        time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	Category Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Bottles  []BottleOption `gorm:"foreignKey:ProductID" json:"bottles,omitempty"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}

// BottleOption is a named bottle variant carrying a price surcharge.
type BottleOption struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	Name      string    `gorm:"not null" json:"name"`
	Surcharge Money     `gorm:"type:decimal(20,2);not null;default:0" json:"surcharge"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (BottleOption) TableName() string {
	return "bottle_options"
}
