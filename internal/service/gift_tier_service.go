package service

import (
	"github.com/scentora-shop/internal/models"
	"github.com/scentora-shop/internal/repository"
)

// GiftTierService manages the spend-threshold gift table.
type GiftTierService struct {
	repo        repository.GiftTierRepository
	productRepo repository.ProductRepository
}

// NewGiftTierService creates a gift tier service.
func NewGiftTierService(repo repository.GiftTierRepository, productRepo repository.ProductRepository) *GiftTierService {
	return &GiftTierService{repo: repo, productRepo: productRepo}
}

// List returns all tiers, inactive included, ordered by threshold.
func (s *GiftTierService) List() ([]models.GiftTier, error) {
	return s.repo.List()
}

// ListActive returns the tiers the gift sync works from.
func (s *GiftTierService) ListActive() ([]models.GiftTier, error) {
	return s.repo.ListActive()
}

// GiftTierInput carries admin create/update fields.
type GiftTierInput struct {
	Threshold models.Money `json:"threshold"`
	ProductID uint         `json:"product_id"`
	IsActive  *bool        `json:"is_active"`
}

// Create validates and inserts a tier.
func (s *GiftTierService) Create(input GiftTierInput) (*models.GiftTier, error) {
	if !input.Threshold.Decimal.IsPositive() || input.ProductID == 0 {
		return nil, ErrGiftTierInvalid
	}
	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}
	tier := &models.GiftTier{
		Threshold: input.Threshold,
		ProductID: input.ProductID,
		IsActive:  active,
	}
	if err := s.repo.Create(tier); err != nil {
		return nil, err
	}
	return tier, nil
}

// Update applies admin edits to a tier.
func (s *GiftTierService) Update(id uint, input GiftTierInput) (*models.GiftTier, error) {
	tier, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tier == nil {
		return nil, ErrGiftTierInvalid
	}
	if input.Threshold.Decimal.IsPositive() {
		tier.Threshold = input.Threshold
	}
	if input.ProductID != 0 && input.ProductID != tier.ProductID {
		product, err := s.productRepo.GetByID(input.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, ErrProductNotFound
		}
		tier.ProductID = input.ProductID
	}
	if input.IsActive != nil {
		tier.IsActive = *input.IsActive
	}
	if err := s.repo.Update(tier); err != nil {
		return nil, err
	}
	return tier, nil
}

// Delete removes a tier.
func (s *GiftTierService) Delete(id uint) error {
	tier, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if tier == nil {
		return ErrGiftTierInvalid
	}
	return s.repo.Delete(id)
}
