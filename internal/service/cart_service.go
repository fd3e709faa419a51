package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scentora-shop/internal/constants"
	"github.com/scentora-shop/internal/logger"
	"github.com/scentora-shop/internal/models"
	"github.com/scentora-shop/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartService owns all cart state. Every mutation runs the gift tier sync
// synchronously before returning, so derived gift lines can never drift
// from the paid subtotal.
type CartService struct {
	cartRepo     repository.CartRepository
	productRepo  repository.ProductRepository
	giftTierRepo repository.GiftTierRepository
	settings     *SettingService
	tracker      *TrackingService
}

// NewCartService creates a cart service.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, giftTierRepo repository.GiftTierRepository, settings *SettingService, tracker *TrackingService) *CartService {
	return &CartService{
		cartRepo:     cartRepo,
		productRepo:  productRepo,
		giftTierRepo: giftTierRepo,
		settings:     settings,
		tracker:      tracker,
	}
}

// AddItemInput selects a product and optionally one of its bottle options.
type AddItemInput struct {
	ProductID uint
	BottleID  uint
}

// CartView is the cart with its derived totals.
type CartView struct {
	Items      []models.CartItem `json:"items"`
	TotalItems int               `json:"total_items"`
	Subtotal   models.Money      `json:"subtotal"`
}

// AddItem adds one unit of a product. An existing non-gift line with the
// same item key gains quantity instead of duplicating.
func (s *CartService) AddItem(token string, input AddItemInput) (*models.CartItem, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrCartTokenRequired
	}
	if input.ProductID == 0 {
		return nil, ErrProductNotFound
	}

	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !product.IsActive {
		return nil, ErrProductNotAvailable
	}

	unitPrice := product.PriceAmount.Decimal
	itemKey := strconv.FormatUint(uint64(product.ID), 10)
	bottleName := ""
	bottlePrice := models.Money{}
	if input.BottleID != 0 {
		bottle := findBottle(product, input.BottleID)
		if bottle == nil {
			return nil, ErrBottleOptionInvalid
		}
		unitPrice = unitPrice.Add(bottle.Surcharge.Decimal)
		itemKey = fmt.Sprintf("%d%s%d", product.ID, constants.BottleKeySeparator, bottle.ID)
		bottleName = bottle.Name
		bottlePrice = bottle.Surcharge
	}

	existing, err := s.cartRepo.GetByKey(token, itemKey)
	if err != nil {
		return nil, err
	}

	var item *models.CartItem
	if existing != nil && !existing.IsGift {
		existing.Quantity++
		if err := s.cartRepo.Update(existing); err != nil {
			return nil, err
		}
		item = existing
	} else {
		item = &models.CartItem{
			CartToken:   token,
			ItemKey:     itemKey,
			ProductID:   product.ID,
			Name:        product.Name,
			Category:    product.Category.Slug,
			Image:       firstImage(product.Images),
			Inspiration: product.Inspiration,
			Price:       models.NewMoneyFromDecimal(unitPrice),
			Size:        product.Size,
			Quantity:    1,
			BottleName:  bottleName,
			BottlePrice: bottlePrice,
		}
		if err := s.cartRepo.Create(item); err != nil {
			return nil, err
		}
	}

	if err := s.syncTierGifts(token); err != nil {
		return nil, err
	}

	s.tracker.Emit(token, constants.EventAddToCart, map[string]interface{}{
		"product_id": product.ID,
		"item_key":   itemKey,
		"name":       product.Name,
		"price":      item.Price.String(),
		"is_gift":    false,
	})
	return item, nil
}

// RemoveItem deletes one line unconditionally.
func (s *CartService) RemoveItem(token, itemKey string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrCartTokenRequired
	}
	item, err := s.cartRepo.GetByKey(token, itemKey)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrCartItemNotFound
	}
	if err := s.cartRepo.DeleteByKey(token, itemKey); err != nil {
		return err
	}
	if err := s.syncTierGifts(token); err != nil {
		return err
	}

	s.tracker.Emit(token, constants.EventRemoveFromCart, map[string]interface{}{
		"product_id": item.ProductID,
		"item_key":   itemKey,
		"name":       item.Name,
		"price":      item.Price.String(),
		"is_gift":    item.IsGift,
	})
	return nil
}

// UpdateQuantity sets a line's quantity exactly. A quantity at or below
// zero is a removal request, never a persisted state. Gift lines are owned
// by the gift logic and reject manual edits.
func (s *CartService) UpdateQuantity(token, itemKey string, quantity int) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrCartTokenRequired
	}
	if quantity <= 0 {
		return s.RemoveItem(token, itemKey)
	}

	item, err := s.cartRepo.GetByKey(token, itemKey)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrCartItemNotFound
	}
	if item.IsGift {
		return ErrGiftLineImmutable
	}

	item.Quantity = quantity
	if err := s.cartRepo.Update(item); err != nil {
		return err
	}
	if err := s.syncTierGifts(token); err != nil {
		return err
	}

	s.tracker.Emit(token, constants.EventUpdateCartQuantity, map[string]interface{}{
		"product_id": item.ProductID,
		"item_key":   itemKey,
		"name":       item.Name,
		"quantity":   quantity,
	})
	return nil
}

// ClearCart removes every line.
func (s *CartService) ClearCart(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrCartTokenRequired
	}
	return s.cartRepo.ClearByToken(token)
}

// GetCart returns the cart with derived totals, recomputed fresh.
func (s *CartService) GetCart(token string) (*CartView, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrCartTokenRequired
	}
	items, err := s.listValidItems(token)
	if err != nil {
		return nil, err
	}
	view := &CartView{
		Items:      items,
		TotalItems: totalItems(items),
		Subtotal:   subtotal(items),
	}
	return view, nil
}

// listValidItems loads the cart and drops rows that fail shape checks.
// A damaged row is logged and skipped, never a crash.
func (s *CartService) listValidItems(token string) ([]models.CartItem, error) {
	items, err := s.cartRepo.ListByToken(token)
	if err != nil {
		return nil, err
	}
	valid := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.ItemKey) == "" || strings.TrimSpace(item.Name) == "" ||
			item.Quantity <= 0 || item.Price.Decimal.IsNegative() {
			logger.Warnw("cart_item_dropped_invalid",
				"cart_token", token,
				"item_key", item.ItemKey,
				"quantity", item.Quantity,
			)
			continue
		}
		valid = append(valid, item)
	}
	return valid, nil
}

// syncTierGifts replaces the tier-gift lines with the set earned by the
// current paid subtotal. It is a single forward pass: gift lines carry
// price 0 and so can never change the subtotal that produced them.
func (s *CartService) syncTierGifts(token string) error {
	items, err := s.cartRepo.ListByToken(token)
	if err != nil {
		return err
	}
	tiers, err := s.giftTierRepo.ListActive()
	if err != nil {
		return err
	}

	paid := paidSubtotal(items)
	desired := make([]models.CartItem, 0, len(tiers))
	for _, tier := range tiers {
		if tier.Product == nil || !tier.Product.IsActive {
			continue
		}
		if paid.Cmp(tier.Threshold.Decimal) < 0 {
			break // tiers are threshold-ordered, nothing further unlocks
		}
		desired = append(desired, models.CartItem{
			CartToken:  token,
			ItemKey:    constants.GiftKeyPrefix + strconv.FormatUint(uint64(tier.ProductID), 10),
			ProductID:  tier.ProductID,
			Name:       tier.Product.Name,
			Category:   constants.CategoryAccessory,
			Image:      firstImage(tier.Product.Images),
			Size:       tier.Product.Size,
			Quantity:   1,
			IsGift:     true,
			GiftSource: constants.GiftSourceTier,
		})
	}

	current := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.IsGift && item.GiftSource == constants.GiftSourceTier {
			current = append(current, item)
		}
	}
	if giftSetsEqual(current, desired) {
		return nil
	}

	return s.cartRepo.Transaction(func(tx *gorm.DB) error {
		repo := s.cartRepo.WithTx(tx)
		if err := repo.DeleteBySource(token, constants.GiftSourceTier); err != nil {
			return err
		}
		for i := range desired {
			if err := repo.Create(&desired[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func giftSetsEqual(current, desired []models.CartItem) bool {
	if len(current) != len(desired) {
		return false
	}
	for i := range current {
		if current[i].ItemKey != desired[i].ItemKey || current[i].Quantity != desired[i].Quantity {
			return false
		}
	}
	return true
}

func findBottle(product *models.Product, bottleID uint) *models.BottleOption {
	for i := range product.Bottles {
		if product.Bottles[i].ID == bottleID {
			return &product.Bottles[i]
		}
	}
	return nil
}

func firstImage(images models.StringArray) string {
	if len(images) == 0 {
		return ""
	}
	return images[0]
}

func totalItems(items []models.CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

func subtotal(items []models.CartItem) models.Money {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return models.NewMoneyFromDecimal(sum)
}

func paidSubtotal(items []models.CartItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		if item.IsGift {
			continue
		}
		sum = sum.Add(item.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return sum
}
