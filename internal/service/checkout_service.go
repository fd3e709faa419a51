package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/scentora-shop/internal/constants"
	"github.com/scentora-shop/internal/models"
)

// CheckoutService renders a cart into a WhatsApp order message and the
// wa.me deep link that carries it.
type CheckoutService struct {
	cart     *CartService
	settings *SettingService
}

// NewCheckoutService creates a checkout service.
func NewCheckoutService(cart *CartService, settings *SettingService) *CheckoutService {
	return &CheckoutService{cart: cart, settings: settings}
}

// CheckoutResult holds both the human-readable message and the link.
type CheckoutResult struct {
	Message     string          `json:"message"`
	WhatsAppURL string          `json:"whatsapp_url"`
	Breakdown   *PriceBreakdown `json:"breakdown"`
}

// BuildOrder renders the order message for the cart under the given offer
// mode and wraps it into a wa.me link.
func (s *CheckoutService) BuildOrder(token, mode string) (*CheckoutResult, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrCartTokenRequired
	}

	settings, err := s.settings.CartSettings()
	if err != nil {
		return nil, err
	}
	phone := sanitizePhone(settings.WhatsAppPhone)
	if phone == "" {
		return nil, ErrCheckoutUnavailable
	}

	view, err := s.cart.GetCart(token)
	if err != nil {
		return nil, err
	}
	if len(view.Items) == 0 {
		return nil, ErrCartEmpty
	}

	breakdown, err := s.cart.Quote(token, mode)
	if err != nil {
		return nil, err
	}

	message := renderOrderMessage(view.Items, breakdown)
	link := fmt.Sprintf("https://wa.me/%s?text=%s", phone, encodeMessage(message))

	return &CheckoutResult{
		Message:     message,
		WhatsAppURL: link,
		Breakdown:   breakdown,
	}, nil
}

func renderOrderMessage(items []models.CartItem, breakdown *PriceBreakdown) string {
	var b strings.Builder
	b.WriteString("Hi! I'd like to place an order:\n\n")

	for i, item := range items {
		b.WriteString(fmt.Sprintf("%d. %s", i+1, item.Name))
		if item.IsGift {
			b.WriteString(" (FREE GIFT)")
		}
		b.WriteString("\n")
		if item.Size != "" {
			b.WriteString(fmt.Sprintf("   Size: %s\n", item.Size))
		}
		if item.Inspiration != "" {
			b.WriteString(fmt.Sprintf("   Inspired by: %s\n", item.Inspiration))
		}
		if item.BottleName != "" {
			b.WriteString(fmt.Sprintf("   Bottle: %s (+₹%s)\n", item.BottleName, item.BottlePrice.String()))
		}
		if item.IsGift {
			b.WriteString(fmt.Sprintf("   Qty: %d - ₹0\n", item.Quantity))
		} else {
			b.WriteString(fmt.Sprintf("   Qty: %d × ₹%s = ₹%s\n", item.Quantity, item.Price.String(), item.LineTotal().String()))
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("Subtotal: ₹%s\n", breakdown.Subtotal.String()))
	if breakdown.Discount.Decimal.IsPositive() {
		b.WriteString(fmt.Sprintf("Discount: -₹%s\n", breakdown.Discount.String()))
	}
	if breakdown.ShippingFee.Decimal.IsZero() {
		b.WriteString("Delivery: FREE\n")
	} else {
		b.WriteString(fmt.Sprintf("Delivery: ₹%s\n", breakdown.ShippingFee.String()))
	}
	b.WriteString(fmt.Sprintf("Total: ₹%s\n", breakdown.GrandTotal.String()))
	b.WriteString("\n")
	b.WriteString(promoSentence(breakdown))
	b.WriteString("\nPlease confirm my order. Thank you!")

	return b.String()
}

func promoSentence(breakdown *PriceBreakdown) string {
	switch breakdown.OfferMode {
	case constants.OfferMode10Off2:
		if breakdown.Discount.Decimal.IsPositive() {
			return "Offer applied: 10% off on 2 or more perfumes.\n"
		}
		return "Selected offer: 10% off when you buy 2 or more perfumes.\n"
	case constants.OfferMode20Off3:
		if breakdown.Discount.Decimal.IsPositive() {
			return "Offer applied: 20% off on 3 or more perfumes.\n"
		}
		return "Selected offer: 20% off when you buy 3 or more perfumes.\n"
	default:
		if breakdown.GiftClaimed {
			return "Offer applied: Buy 3 Get 1 Free - free 50ml included.\n"
		}
		if breakdown.GiftUnlocked {
			return "Offer unlocked: Buy 3 Get 1 Free - free 50ml not yet claimed.\n"
		}
		return fmt.Sprintf("Selected offer: Buy %d Get 1 Free on 50ml perfumes.\n", breakdown.GiftGoal)
	}
}

// encodeMessage percent-encodes for a URL query value. QueryEscape emits
// "+" for spaces, which WhatsApp renders literally, so spaces become %20.
func encodeMessage(message string) string {
	return strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}

// sanitizePhone strips everything but digits from the configured number.
func sanitizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
