package service

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/scentora-shop/internal/constants"

	"github.com/shopspring/decimal"
)

func TestQuoteShippingBelowThreshold(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	category := createCartTestCategory(t, db, "perfume")
	product := createCartTestProduct(t, db, category.ID, "mini-45", "50ml", 45)

	item, err := svc.AddItem("quote-1", AddItemInput{ProductID: product.ID})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.UpdateQuantity("quote-1", item.ItemKey, 2); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	breakdown, err := svc.Quote("quote-1", constants.OfferModeBuy3Get1)
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if !breakdown.Subtotal.Decimal.Equal(decimal.NewFromInt(90)) {
		t.Fatalf("expected subtotal 90, got %s", breakdown.Subtotal.String())
	}
	if !breakdown.ShippingFee.Decimal.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected shipping 100 below threshold, got %s", breakdown.ShippingFee.String())
	}
	if !breakdown.GrandTotal.Decimal.Equal(decimal.NewFromInt(190)) {
		t.Fatalf("expected total 190, got %s", breakdown.GrandTotal.String())
	}
}

func TestQuoteEmptyCartNoShipping(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	breakdown, err := svc.Quote("quote-2", constants.OfferModeBuy3Get1)
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if !breakdown.Subtotal.Decimal.IsZero() {
		t.Fatalf("expected zero subtotal, got %s", breakdown.Subtotal.String())
	}
	if !breakdown.ShippingFee.Decimal.IsZero() {
		t.Fatalf("empty cart must not incur shipping, got %s", breakdown.ShippingFee.String())
	}
	if !breakdown.GrandTotal.Decimal.IsZero() {
		t.Fatalf("expected zero total, got %s", breakdown.GrandTotal.String())
	}
}

func TestQuoteShippingFreeAtThreshold(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	category := createCartTestCategory(t, db, "perfume")
	product := createCartTestProduct(t, db, category.ID, "grand-1000", "100ml", 1000)

	if _, err := svc.AddItem("quote-3", AddItemInput{ProductID: product.ID}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	breakdown, err := svc.Quote("quote-3", constants.OfferModeBuy3Get1)
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if !breakdown.ShippingFee.Decimal.IsZero() {
		t.Fatalf("expected free shipping at 1000, got %s", breakdown.ShippingFee.String())
	}
}

func TestQuoteTenOffTwo(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	category := createCartTestCategory(t, db, "perfume")
	product := createCartTestProduct(t, db, category.ID, "duo-250", "50ml", 250)

	item, err := svc.AddItem("quote-4", AddItemInput{ProductID: product.ID})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// One item: below the 2-item floor, no discount.
	breakdown, err := svc.Quote("quote-4", constants.OfferMode10Off2)
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if !breakdown.Discount.Decimal.IsZero() {
		t.Fatalf("expected no discount for one item, got %s", breakdown.Discount.String())
	}

	if err := svc.UpdateQuantity("quote-4", item.ItemKey, 2); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	breakdown, err = svc.Quote("quote-4", constants.OfferMode10Off2)
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if !breakdown.Discount.Decimal.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected discount 50 on 500, got %s", breakdown.Discount.String())
	}
	if !breakdown.GrandTotal.Decimal.Equal(decimal.NewFromInt(550)) {
		t.Fatalf("expected total 450 + 100 shipping = 550, got %s", breakdown.GrandTotal.String())
	}
}

func TestQuoteTwentyOffThree(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	category := createCartTestCategory(t, db, "perfume")
	product := createCartTestProduct(t, db, category.ID, "trio-400", "50ml", 400)

	item, err := svc.AddItem("quote-5", AddItemInput{ProductID: product.ID})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.UpdateQuantity("quote-5", item.ItemKey, 2); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	breakdown, err := svc.Quote("quote-5", constants.OfferMode20Off3)
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if !breakdown.Discount.Decimal.IsZero() {
		t.Fatalf("expected no discount below 3 items, got %s", breakdown.Discount.String())
	}

	if err := svc.UpdateQuantity("quote-5", item.ItemKey, 3); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	breakdown, err = svc.Quote("quote-5", constants.OfferMode20Off3)
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if !breakdown.Discount.Decimal.Equal(decimal.NewFromInt(240)) {
		t.Fatalf("expected discount 240 on 1200, got %s", breakdown.Discount.String())
	}
	if !breakdown.ShippingFee.Decimal.IsZero() {
		t.Fatalf("expected free shipping at 1200, got %s", breakdown.ShippingFee.String())
	}
	if !breakdown.GrandTotal.Decimal.Equal(decimal.NewFromInt(960)) {
		t.Fatalf("expected total 960, got %s", breakdown.GrandTotal.String())
	}
}

func TestQuoteUnknownModeFallsBackToGiftMode(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	breakdown, err := svc.Quote("quote-6", "mystery-mode")
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if breakdown.OfferMode != constants.OfferModeBuy3Get1 {
		t.Fatalf("expected fallback to gift mode, got %q", breakdown.OfferMode)
	}
}

func TestQuoteGiftUnlockCountsEligible50ml(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	category := createCartTestCategory(t, db, "perfume")
	small := createCartTestProduct(t, db, category.ID, "small-300", "50ml", 300)
	large := createCartTestProduct(t, db, category.ID, "large-600", "100ml", 600)

	item, err := svc.AddItem("quote-7", AddItemInput{ProductID: small.ID})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.UpdateQuantity("quote-7", item.ItemKey, 2); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if _, err := svc.AddItem("quote-7", AddItemInput{ProductID: large.ID}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// Two 50ml plus one 100ml: three paid items but only two eligible.
	breakdown, err := svc.Quote("quote-7", constants.OfferModeBuy3Get1)
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if breakdown.PaidQuantity != 3 {
		t.Fatalf("expected 3 paid items, got %d", breakdown.PaidQuantity)
	}
	if breakdown.Eligible50mlCount != 2 {
		t.Fatalf("expected 2 eligible items, got %d", breakdown.Eligible50mlCount)
	}
	if breakdown.GiftUnlocked {
		t.Fatalf("gift must stay locked at 2 eligible items")
	}

	if err := svc.UpdateQuantity("quote-7", item.ItemKey, 3); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	breakdown, err = svc.Quote("quote-7", constants.OfferModeBuy3Get1)
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if !breakdown.GiftUnlocked {
		t.Fatalf("expected gift unlocked at 3 eligible items")
	}
}

func TestClaimGiftFlow(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	category := createCartTestCategory(t, db, "perfume")
	product := createCartTestProduct(t, db, category.ID, "stack-350", "50ml", 350)
	reward := createCartTestProduct(t, db, category.ID, "reward-50", "50ml", 299)

	item, err := svc.AddItem("claim-1", AddItemInput{ProductID: product.ID})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// Locked below the goal.
	if _, err := svc.ClaimGift("claim-1", reward.ID); err != ErrGiftLocked {
		t.Fatalf("expected ErrGiftLocked, got %v", err)
	}

	if err := svc.UpdateQuantity("claim-1", item.ItemKey, 3); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	gift, err := svc.ClaimGift("claim-1", reward.ID)
	if err != nil {
		t.Fatalf("claim failed: %v", err)
	}
	if !gift.IsGift || gift.GiftSource != constants.GiftSourceClaim {
		t.Fatalf("expected claim-sourced gift, got %+v", gift)
	}
	if !gift.Price.Decimal.IsZero() {
		t.Fatalf("claimed gift must be free, got %s", gift.Price.String())
	}

	// At most one claim per cart.
	if _, err := svc.ClaimGift("claim-1", reward.ID); err != ErrGiftAlreadyClaimed {
		t.Fatalf("expected ErrGiftAlreadyClaimed, got %v", err)
	}
}

func TestClaimGiftRejectsProductAlreadyGrantedAsTierGift(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	category := createCartTestCategory(t, db, "perfume")
	product := createCartTestProduct(t, db, category.ID, "stack-450", "50ml", 450)
	reward := createCartTestProduct(t, db, category.ID, "tier-reward-50", "50ml", 299)
	createCartTestGiftTier(t, db, 799, reward.ID)

	item, err := svc.AddItem("claim-3", AddItemInput{ProductID: product.ID})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.UpdateQuantity("claim-3", item.ItemKey, 3); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	// Subtotal 1350 grants the reward as a tier gift, so its gift line
	// already exists when the shopper claims the same product.
	tierGift, err := svc.cartRepo.GetByKey("claim-3", constants.GiftKeyPrefix+strconv.FormatUint(uint64(reward.ID), 10))
	if err != nil || tierGift == nil {
		t.Fatalf("expected tier gift line, got %+v err %v", tierGift, err)
	}
	if _, err := svc.ClaimGift("claim-3", reward.ID); err != ErrGiftAlreadyClaimed {
		t.Fatalf("expected ErrGiftAlreadyClaimed, got %v", err)
	}
}

func TestClaimGiftRejectsNonEligibleProduct(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	category := createCartTestCategory(t, db, "perfume")
	product := createCartTestProduct(t, db, category.ID, "base-320", "50ml", 320)
	big := createCartTestProduct(t, db, category.ID, "big-100", "100ml", 600)

	item, err := svc.AddItem("claim-2", AddItemInput{ProductID: product.ID})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.UpdateQuantity("claim-2", item.ItemKey, 3); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if _, err := svc.ClaimGift("claim-2", big.ID); err != ErrGiftNotEligible {
		t.Fatalf("expected ErrGiftNotEligible, got %v", err)
	}
}

func TestSelectOfferModeRemovesClaimedGift(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	category := createCartTestCategory(t, db, "perfume")
	product := createCartTestProduct(t, db, category.ID, "mode-380", "50ml", 380)
	reward := createCartTestProduct(t, db, category.ID, "mode-reward", "50ml", 280)

	item, err := svc.AddItem("mode-1", AddItemInput{ProductID: product.ID})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.UpdateQuantity("mode-1", item.ItemKey, 3); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if _, err := svc.ClaimGift("mode-1", reward.ID); err != nil {
		t.Fatalf("claim failed: %v", err)
	}

	mode, err := svc.SelectOfferMode("mode-1", constants.OfferMode10Off2)
	if err != nil {
		t.Fatalf("select mode failed: %v", err)
	}
	if mode != constants.OfferMode10Off2 {
		t.Fatalf("expected mode %q, got %q", constants.OfferMode10Off2, mode)
	}
	if gifts := countGiftLines(t, svc, "mode-1"); gifts != 0 {
		t.Fatalf("expected claimed gift removed on mode switch, got %d gift lines", gifts)
	}

	// Switching back does not restore the claim.
	if _, err := svc.SelectOfferMode("mode-1", constants.OfferModeBuy3Get1); err != nil {
		t.Fatalf("select mode failed: %v", err)
	}
	if gifts := countGiftLines(t, svc, "mode-1"); gifts != 0 {
		t.Fatalf("claim must not auto-restore, got %d gift lines", gifts)
	}
}

func TestSelectOfferModeKeepsTierGifts(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	category := createCartTestCategory(t, db, "perfume")
	product := createCartTestProduct(t, db, category.ID, "tier-900", "100ml", 900)
	accessory := createCartTestProduct(t, db, category.ID, "tier-token", "", 0)
	createCartTestGiftTier(t, db, 799, accessory.ID)

	if _, err := svc.AddItem("mode-2", AddItemInput{ProductID: product.ID}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if gifts := countGiftLines(t, svc, "mode-2"); gifts != 1 {
		t.Fatalf("expected 1 tier gift, got %d", gifts)
	}

	if _, err := svc.SelectOfferMode("mode-2", constants.OfferMode20Off3); err != nil {
		t.Fatalf("select mode failed: %v", err)
	}
	if gifts := countGiftLines(t, svc, "mode-2"); gifts != 1 {
		t.Fatalf("tier gift must survive mode switch, got %d", gifts)
	}
}

func TestClaimedGiftSurvivesRoundTrip(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	category := createCartTestCategory(t, db, "perfume")
	product := createCartTestProduct(t, db, category.ID, "trip-340", "50ml", 340)
	reward := createCartTestProduct(t, db, category.ID, "trip-reward", "50ml", 260)

	item, err := svc.AddItem("trip-1", AddItemInput{ProductID: product.ID})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.UpdateQuantity("trip-1", item.ItemKey, 3); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	gift, err := svc.ClaimGift("trip-1", reward.ID)
	if err != nil {
		t.Fatalf("claim failed: %v", err)
	}

	wantKey := constants.GiftKeyPrefix + fmt.Sprint(reward.ID)
	if gift.ItemKey != wantKey {
		t.Fatalf("expected gift key %q, got %q", wantKey, gift.ItemKey)
	}

	breakdown, err := svc.Quote("trip-1", constants.OfferModeBuy3Get1)
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if !breakdown.GiftClaimed {
		t.Fatalf("expected claim visible in breakdown")
	}
	if !breakdown.Subtotal.Decimal.Equal(decimal.NewFromInt(1020)) {
		t.Fatalf("claimed gift must not affect subtotal, got %s", breakdown.Subtotal.String())
	}
}
