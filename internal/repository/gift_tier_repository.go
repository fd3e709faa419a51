package repository

import (
	"errors"

	"github.com/scentora-shop/internal/models"

	"gorm.io/gorm"
)

// GiftTierRepository is the gift tier data access interface.
type GiftTierRepository interface {
	ListActive() ([]models.GiftTier, error)
	List() ([]models.GiftTier, error)
	GetByID(id uint) (*models.GiftTier, error)
	Create(tier *models.GiftTier) error
	Update(tier *models.GiftTier) error
	Delete(id uint) error
}

// GormGiftTierRepository is the GORM implementation.
type GormGiftTierRepository struct {
	db *gorm.DB
}

// NewGiftTierRepository creates a gift tier repository.
func NewGiftTierRepository(db *gorm.DB) *GormGiftTierRepository {
	return &GormGiftTierRepository{db: db}
}

// ListActive returns enabled tiers ordered by ascending threshold.
func (r *GormGiftTierRepository) ListActive() ([]models.GiftTier, error) {
	var tiers []models.GiftTier
	if err := r.db.Preload("Product").Where("is_active = ?", true).Order("threshold ASC, id ASC").Find(&tiers).Error; err != nil {
		return nil, err
	}
	return tiers, nil
}

// List returns every tier ordered by ascending threshold.
func (r *GormGiftTierRepository) List() ([]models.GiftTier, error) {
	var tiers []models.GiftTier
	if err := r.db.Preload("Product").Order("threshold ASC, id ASC").Find(&tiers).Error; err != nil {
		return nil, err
	}
	return tiers, nil
}

// GetByID returns one tier, nil when absent.
func (r *GormGiftTierRepository) GetByID(id uint) (*models.GiftTier, error) {
	var tier models.GiftTier
	if err := r.db.Preload("Product").First(&tier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tier, nil
}

// Create inserts a tier.
func (r *GormGiftTierRepository) Create(tier *models.GiftTier) error {
	return r.db.Create(tier).Error
}

// Update saves a tier.
func (r *GormGiftTierRepository) Update(tier *models.GiftTier) error {
	return r.db.Save(tier).Error
}

// Delete soft-deletes a tier.
func (r *GormGiftTierRepository) Delete(id uint) error {
	return r.db.Delete(&models.GiftTier{}, id).Error
}
