package repository

import (
	"errors"
	"time"

	"github.com/scentora-shop/internal/models"

	"gorm.io/gorm"
)

// CartRepository is the cart data access interface. Cart lines are hard
// deleted: a removed line must not block re-adding the same item key.
type CartRepository interface {
	ListByToken(token string) ([]models.CartItem, error)
	GetByKey(token, itemKey string) (*models.CartItem, error)
	Create(item *models.CartItem) error
	Update(item *models.CartItem) error
	DeleteByKey(token, itemKey string) error
	DeleteBySource(token, giftSource string) error
	ClearByToken(token string) error
	DeleteStaleBefore(cutoff time.Time) (int64, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) CartRepository
}

// GormCartRepository is the GORM implementation.
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a cart repository.
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormCartRepository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// Transaction runs fn inside a transaction.
func (r *GormCartRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// ListByToken returns the cart lines in insertion order.
func (r *GormCartRepository) ListByToken(token string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Where("cart_token = ?", token).Order("created_at ASC, id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByKey returns one line by its item key, nil when absent.
func (r *GormCartRepository) GetByKey(token, itemKey string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("cart_token = ? AND item_key = ?", token, itemKey).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create inserts a cart line.
func (r *GormCartRepository) Create(item *models.CartItem) error {
	if item == nil {
		return nil
	}
	return r.db.Create(item).Error
}

// Update saves a cart line.
func (r *GormCartRepository) Update(item *models.CartItem) error {
	if item == nil {
		return nil
	}
	return r.db.Save(item).Error
}

// DeleteByKey removes one line.
func (r *GormCartRepository) DeleteByKey(token, itemKey string) error {
	return r.db.Where("cart_token = ? AND item_key = ?", token, itemKey).Delete(&models.CartItem{}).Error
}

// DeleteBySource removes every gift line with the given origin.
func (r *GormCartRepository) DeleteBySource(token, giftSource string) error {
	return r.db.Where("cart_token = ? AND gift_source = ?", token, giftSource).Delete(&models.CartItem{}).Error
}

// ClearByToken removes all lines of a cart.
func (r *GormCartRepository) ClearByToken(token string) error {
	return r.db.Where("cart_token = ?", token).Delete(&models.CartItem{}).Error
}

// DeleteStaleBefore removes carts untouched since the cutoff and reports
// how many lines went away.
func (r *GormCartRepository) DeleteStaleBefore(cutoff time.Time) (int64, error) {
	result := r.db.
		Where("cart_token IN (SELECT cart_token FROM (SELECT cart_token, MAX(updated_at) AS latest FROM cart_items GROUP BY cart_token) stale WHERE stale.latest < ?)", cutoff).
		Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}
