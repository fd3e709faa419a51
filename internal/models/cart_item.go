package models

import (
	"time"
)

// CartItem is one cart line. Lines are keyed by a composite item key:
// "<productID>" for plain products, "<productID>::bottle-<bottleID>" for
// bottle-variant selections and "gift-<productID>" for complimentary items.
// Gift lines carry price 0 and are owned by the gift logic, never by the
// shopper directly.
type CartItem struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CartToken   string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_cart_token_item,priority:1" json:"-"`
	ItemKey     string    `gorm:"type:varchar(191);not null;uniqueIndex:idx_cart_token_item,priority:2" json:"item_key"`
	ProductID   uint      `gorm:"not null;index" json:"product_id"`
	Name        string    `gorm:"not null" json:"name"`
	Category    string    `gorm:"type:varchar(50)" json:"category"`
	Image       string    `gorm:"type:varchar(500)" json:"image"`
	Inspiration string    `gorm:"type:varchar(255)" json:"inspiration"`
	Price       Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // unit price, bottle surcharge included
	Size        string    `gorm:"type:varchar(20)" json:"size"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	IsGift      bool      `gorm:"not null;default:false" json:"is_gift"`
	GiftSource  string    `gorm:"type:varchar(20)" json:"gift_source,omitempty"` // tier / claim, empty for paid lines
	BottleName  string    `gorm:"type:varchar(100)" json:"bottle_name,omitempty"`
	BottlePrice Money     `gorm:"type:decimal(20,2);not null;default:0" json:"bottle_price"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `gorm:"index" json:"updated_at"`
}

// TableName sets the table name.
func (CartItem) TableName() string {
	return "cart_items"
}

// LineTotal returns price multiplied by quantity.
func (i CartItem) LineTotal() Money {
	return NewMoneyFromDecimal(i.Price.Decimal.Mul(decimalFromInt(i.Quantity)))
}
