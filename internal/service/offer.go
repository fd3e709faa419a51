package service

import (
	"strconv"
	"strings"

	"github.com/scentora-shop/internal/constants"
	"github.com/scentora-shop/internal/models"

	"github.com/shopspring/decimal"
)

// PriceBreakdown is the full pricing quote for one cart under one offer mode.
type PriceBreakdown struct {
	OfferMode         string       `json:"offer_mode"`
	Subtotal          models.Money `json:"subtotal"`
	Discount          models.Money `json:"discount"`
	ShippingFee       models.Money `json:"shipping_fee"`
	GrandTotal        models.Money `json:"grand_total"`
	PaidQuantity      int          `json:"paid_quantity"`
	Eligible50mlCount int          `json:"eligible_50ml_count"`
	GiftGoal          int          `json:"gift_goal"`
	GiftUnlocked      bool         `json:"gift_unlocked"`
	GiftClaimed       bool         `json:"gift_claimed"`
}

// normalizeOfferMode maps any unknown mode to the default gift mode.
func normalizeOfferMode(mode string) string {
	switch mode {
	case constants.OfferMode10Off2, constants.OfferMode20Off3, constants.OfferModeBuy3Get1:
		return mode
	default:
		return constants.OfferModeBuy3Get1
	}
}

// Quote prices the cart under the given offer mode. The three modes are
// mutually exclusive: percentage discounts never stack with the claim gift.
func (s *CartService) Quote(token, mode string) (*PriceBreakdown, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrCartTokenRequired
	}
	items, err := s.listValidItems(token)
	if err != nil {
		return nil, err
	}
	settings, err := s.settings.CartSettings()
	if err != nil {
		return nil, err
	}
	return s.quoteItems(items, mode, settings), nil
}

func (s *CartService) quoteItems(items []models.CartItem, mode string, settings CartSettings) *PriceBreakdown {
	mode = normalizeOfferMode(mode)

	sub := paidSubtotal(items)
	paidQty := 0
	eligible := 0
	claimed := false
	for _, item := range items {
		if item.IsGift {
			if item.GiftSource == constants.GiftSourceClaim {
				claimed = true
			}
			continue
		}
		paidQty += item.Quantity
		if item.Size == constants.EligibleGiftSize {
			eligible += item.Quantity
		}
	}

	goal := settings.FreeGiftGoal
	if goal <= 0 {
		goal = constants.DefaultFreeGiftGoal
	}

	discount := decimal.Zero
	switch mode {
	case constants.OfferMode10Off2:
		if paidQty >= 2 {
			discount = sub.Mul(decimal.NewFromFloat(0.10))
		}
	case constants.OfferMode20Off3:
		if paidQty >= 3 {
			discount = sub.Mul(decimal.NewFromFloat(0.20))
		}
	}
	discount = discount.Round(2)

	shipping := decimal.Zero
	if sub.IsPositive() && sub.Cmp(settings.FreeDeliveryThreshold.Decimal) < 0 {
		shipping = settings.FlatDeliveryCharge.Decimal
	}

	grand := sub.Sub(discount).Add(shipping)

	return &PriceBreakdown{
		OfferMode:         mode,
		Subtotal:          models.NewMoneyFromDecimal(sub),
		Discount:          models.NewMoneyFromDecimal(discount),
		ShippingFee:       models.NewMoneyFromDecimal(shipping),
		GrandTotal:        models.NewMoneyFromDecimal(grand),
		PaidQuantity:      paidQty,
		Eligible50mlCount: eligible,
		GiftGoal:          goal,
		GiftUnlocked:      mode == constants.OfferModeBuy3Get1 && eligible >= goal,
		GiftClaimed:       claimed,
	}
}

// SelectOfferMode switches the active offer mode for the cart. Leaving the
// gift mode removes any claimed gift, since the modes never combine.
func (s *CartService) SelectOfferMode(token, mode string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrCartTokenRequired
	}
	mode = normalizeOfferMode(mode)
	if mode != constants.OfferModeBuy3Get1 {
		if err := s.cartRepo.DeleteBySource(token, constants.GiftSourceClaim); err != nil {
			return "", err
		}
	}
	return mode, nil
}

// ClaimGift adds the chosen free 50ml once the eligible quantity reaches
// the goal. A cart carries at most one claimed gift.
func (s *CartService) ClaimGift(token string, productID uint) (*models.CartItem, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrCartTokenRequired
	}
	items, err := s.listValidItems(token)
	if err != nil {
		return nil, err
	}
	settings, err := s.settings.CartSettings()
	if err != nil {
		return nil, err
	}

	goal := settings.FreeGiftGoal
	if goal <= 0 {
		goal = constants.DefaultFreeGiftGoal
	}
	eligible := 0
	for _, item := range items {
		if item.IsGift {
			if item.GiftSource == constants.GiftSourceClaim {
				return nil, ErrGiftAlreadyClaimed
			}
			continue
		}
		if item.Size == constants.EligibleGiftSize {
			eligible += item.Quantity
		}
	}
	if eligible < goal {
		return nil, ErrGiftLocked
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive || product.Size != constants.EligibleGiftSize {
		return nil, ErrGiftNotEligible
	}

	// A tier gift for the same product already occupies the gift-<id> key.
	giftKey := constants.GiftKeyPrefix + strconv.FormatUint(uint64(product.ID), 10)
	existing, err := s.cartRepo.GetByKey(token, giftKey)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrGiftAlreadyClaimed
	}

	gift := &models.CartItem{
		CartToken:   token,
		ItemKey:     giftKey,
		ProductID:   product.ID,
		Name:        product.Name,
		Category:    product.Category.Slug,
		Image:       firstImage(product.Images),
		Inspiration: product.Inspiration,
		Size:        product.Size,
		Quantity:    1,
		IsGift:      true,
		GiftSource:  constants.GiftSourceClaim,
	}
	if err := s.cartRepo.Create(gift); err != nil {
		return nil, err
	}
	return gift, nil
}

// UnclaimGift drops the claimed gift line if present.
func (s *CartService) UnclaimGift(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrCartTokenRequired
	}
	return s.cartRepo.DeleteBySource(token, constants.GiftSourceClaim)
}
