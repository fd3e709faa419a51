package service

import (
	"strings"
	"testing"

	"github.com/scentora-shop/internal/config"
	"github.com/scentora-shop/internal/constants"
	"github.com/scentora-shop/internal/repository"

	"gorm.io/gorm"
)

func setupCheckoutServiceTest(t *testing.T) (*CheckoutService, *CartService, *gorm.DB) {
	t.Helper()
	cartSvc, db := setupCartServiceTest(t)
	return NewCheckoutService(cartSvc, cartSvc.settings), cartSvc, db
}

func TestBuildOrderMessageFormat(t *testing.T) {
	checkout, cartSvc, db := setupCheckoutServiceTest(t)
	category := createCartTestCategory(t, db, "perfume")
	product := createCartTestProduct(t, db, category.ID, "wa-450", "50ml", 450)

	item, err := cartSvc.AddItem("wa-1", AddItemInput{ProductID: product.ID})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := cartSvc.UpdateQuantity("wa-1", item.ItemKey, 2); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	result, err := checkout.BuildOrder("wa-1", constants.OfferModeBuy3Get1)
	if err != nil {
		t.Fatalf("build order failed: %v", err)
	}

	for _, want := range []string{
		"1. Product wa-450",
		"Size: 50ml",
		"Qty: 2 \u00d7 \u20b9450.00 = \u20b9900.00",
		"Subtotal: \u20b9900.00",
		"Delivery: \u20b9100.00",
		"Total: \u20b91000.00",
	} {
		if !strings.Contains(result.Message, want) {
			t.Fatalf("message missing %q:\n%s", want, result.Message)
		}
	}
	if strings.Contains(result.Message, "Discount:") {
		t.Fatalf("discount line must be absent without a discount:\n%s", result.Message)
	}
	if !strings.HasPrefix(result.WhatsAppURL, "https://wa.me/919876543210?text=") {
		t.Fatalf("unexpected link: %s", result.WhatsAppURL)
	}
	if strings.Contains(result.WhatsAppURL, "+") {
		t.Fatalf("spaces must encode as %%20, not +: %s", result.WhatsAppURL)
	}
}

func TestBuildOrderFreeDeliveryAndDiscountLine(t *testing.T) {
	checkout, cartSvc, db := setupCheckoutServiceTest(t)
	category := createCartTestCategory(t, db, "perfume")
	product := createCartTestProduct(t, db, category.ID, "wa-600", "50ml", 600)

	item, err := cartSvc.AddItem("wa-2", AddItemInput{ProductID: product.ID})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := cartSvc.UpdateQuantity("wa-2", item.ItemKey, 2); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	result, err := checkout.BuildOrder("wa-2", constants.OfferMode10Off2)
	if err != nil {
		t.Fatalf("build order failed: %v", err)
	}
	if !strings.Contains(result.Message, "Discount: -\u20b9120.00") {
		t.Fatalf("expected discount line:\n%s", result.Message)
	}
	if !strings.Contains(result.Message, "Delivery: FREE") {
		t.Fatalf("expected FREE delivery at 1200:\n%s", result.Message)
	}
	if !strings.Contains(result.Message, "Total: \u20b91080.00") {
		t.Fatalf("expected total 1080:\n%s", result.Message)
	}
	if !strings.Contains(result.Message, "10% off") {
		t.Fatalf("expected promo sentence for 10off2:\n%s", result.Message)
	}
}

func TestBuildOrderMarksGiftLines(t *testing.T) {
	checkout, cartSvc, db := setupCheckoutServiceTest(t)
	category := createCartTestCategory(t, db, "perfume")
	product := createCartTestProduct(t, db, category.ID, "wa-850", "100ml", 850)
	accessory := createCartTestProduct(t, db, category.ID, "wa-gift", "", 0)
	createCartTestGiftTier(t, db, 799, accessory.ID)

	if _, err := cartSvc.AddItem("wa-3", AddItemInput{ProductID: product.ID}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	result, err := checkout.BuildOrder("wa-3", constants.OfferModeBuy3Get1)
	if err != nil {
		t.Fatalf("build order failed: %v", err)
	}
	if !strings.Contains(result.Message, "(FREE GIFT)") {
		t.Fatalf("expected gift marker:\n%s", result.Message)
	}
}

func TestBuildOrderEmptyCart(t *testing.T) {
	checkout, _, _ := setupCheckoutServiceTest(t)
	if _, err := checkout.BuildOrder("wa-4", constants.OfferModeBuy3Get1); err != ErrCartEmpty {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
}

func TestBuildOrderWithoutPhoneConfigured(t *testing.T) {
	cartSvc, db := setupCartServiceTest(t)
	settings := NewSettingService(
		repository.NewSettingRepository(db),
		config.CartConfig{FreeDeliveryThreshold: 1000, FlatDeliveryCharge: 100, FreeGiftGoal: 3},
		config.WhatsAppConfig{},
	)
	checkout := NewCheckoutService(cartSvc, settings)

	if _, err := checkout.BuildOrder("wa-5", constants.OfferModeBuy3Get1); err != ErrCheckoutUnavailable {
		t.Fatalf("expected ErrCheckoutUnavailable, got %v", err)
	}
}

func TestEncodeMessageUsesPercentTwenty(t *testing.T) {
	encoded := encodeMessage("Hi there & thanks!")
	if strings.Contains(encoded, "+") {
		t.Fatalf("encoded message contains +: %s", encoded)
	}
	if !strings.Contains(encoded, "%20") {
		t.Fatalf("expected %%20 for spaces: %s", encoded)
	}
	if !strings.Contains(encoded, "%26") {
		t.Fatalf("expected %%26 for ampersand: %s", encoded)
	}
}
