package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/scentora-shop/internal/config"
	"github.com/scentora-shop/internal/constants"
	"github.com/scentora-shop/internal/models"
	"github.com/scentora-shop/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:cart_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.BottleOption{},
		&models.CartItem{},
		&models.GiftTier{},
		&models.Setting{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	settingSvc := NewSettingService(
		repository.NewSettingRepository(db),
		config.CartConfig{FreeDeliveryThreshold: 1000, FlatDeliveryCharge: 100, FreeGiftGoal: 3},
		config.WhatsAppConfig{Phone: "919876543210"},
	)
	svc := NewCartService(
		repository.NewCartRepository(db),
		repository.NewProductRepository(db),
		repository.NewGiftTierRepository(db),
		settingSvc,
		NewTrackingService(nil),
	)
	return svc, db
}

func createCartTestCategory(t *testing.T, db *gorm.DB, slug string) models.Category {
	t.Helper()
	category := models.Category{Slug: slug, Name: slug}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	return category
}

func createCartTestProduct(t *testing.T, db *gorm.DB, categoryID uint, slug, size string, price int64) models.Product {
	t.Helper()
	product := models.Product{
		CategoryID:  categoryID,
		Slug:        slug,
		Name:        "Product " + slug,
		Size:        size,
		PriceAmount: models.NewMoneyFromInt(price),
		IsActive:    true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func createCartTestGiftTier(t *testing.T, db *gorm.DB, threshold int64, productID uint) models.GiftTier {
	t.Helper()
	tier := models.GiftTier{
		Threshold: models.NewMoneyFromInt(threshold),
		ProductID: productID,
		IsActive:  true,
	}
	if err := db.Create(&tier).Error; err != nil {
		t.Fatalf("create gift tier failed: %v", err)
	}
	return tier
}

func TestAddItemTwiceIncrementsQuantity(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	category := createCartTestCategory(t, db, "perfume")
	product := createCartTestProduct(t, db, category.ID, "noir-45", "50ml", 45)

	if _, err := svc.AddItem("tok-1", AddItemInput{ProductID: product.ID}); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if _, err := svc.AddItem("tok-1", AddItemInput{ProductID: product.ID}); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	view, err := svc.GetCart("tok-1")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("expected a single line, got %d", len(view.Items))
	}
	if view.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", view.Items[0].Quantity)
	}
	if view.TotalItems != 2 {
		t.Fatalf("expected total items 2, got %d", view.TotalItems)
	}
	if !view.Subtotal.Decimal.Equal(decimal.NewFromInt(90)) {
		t.Fatalf("expected subtotal 90, got %s", view.Subtotal.String())
	}
}

func TestAddItemWithBottleOptionUsesSeparateLine(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	category := createCartTestCategory(t, db, "perfume")
	product := createCartTestProduct(t, db, category.ID, "oud-500", "50ml", 500)
	bottle := models.BottleOption{ProductID: product.ID, Name: "Matte Black", Surcharge: models.NewMoneyFromInt(50)}
	if err := db.Create(&bottle).Error; err != nil {
		t.Fatalf("create bottle failed: %v", err)
	}

	if _, err := svc.AddItem("tok-2", AddItemInput{ProductID: product.ID}); err != nil {
		t.Fatalf("plain add failed: %v", err)
	}
	item, err := svc.AddItem("tok-2", AddItemInput{ProductID: product.ID, BottleID: bottle.ID})
	if err != nil {
		t.Fatalf("bottle add failed: %v", err)
	}
	if !item.Price.Decimal.Equal(decimal.NewFromInt(550)) {
		t.Fatalf("expected unit price 550 with surcharge, got %s", item.Price.String())
	}
	wantKey := fmt.Sprintf("%d%s%d", product.ID, constants.BottleKeySeparator, bottle.ID)
	if item.ItemKey != wantKey {
		t.Fatalf("expected item key %q, got %q", wantKey, item.ItemKey)
	}

	view, err := svc.GetCart("tok-2")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(view.Items) != 2 {
		t.Fatalf("expected two lines, got %d", len(view.Items))
	}
}

func TestAddItemRejectsInvalidBottle(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	category := createCartTestCategory(t, db, "perfume")
	product := createCartTestProduct(t, db, category.ID, "rose-300", "50ml", 300)

	if _, err := svc.AddItem("tok-3", AddItemInput{ProductID: product.ID, BottleID: 999}); err != ErrBottleOptionInvalid {
		t.Fatalf("expected ErrBottleOptionInvalid, got %v", err)
	}
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	category := createCartTestCategory(t, db, "perfume")
	product := createCartTestProduct(t, db, category.ID, "iris-250", "50ml", 250)

	item, err := svc.AddItem("tok-4", AddItemInput{ProductID: product.ID})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.UpdateQuantity("tok-4", item.ItemKey, 0); err != nil {
		t.Fatalf("update to zero failed: %v", err)
	}

	view, err := svc.GetCart("tok-4")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(view.Items))
	}
}

func TestUpdateQuantityRejectsGiftLine(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	category := createCartTestCategory(t, db, "perfume")
	paid := createCartTestProduct(t, db, category.ID, "amber-800", "100ml", 800)
	accessory := createCartTestProduct(t, db, category.ID, "mini-talc", "", 0)
	createCartTestGiftTier(t, db, 799, accessory.ID)

	if _, err := svc.AddItem("tok-5", AddItemInput{ProductID: paid.ID}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	giftKey := constants.GiftKeyPrefix + fmt.Sprint(accessory.ID)
	if err := svc.UpdateQuantity("tok-5", giftKey, 3); err != ErrGiftLineImmutable {
		t.Fatalf("expected ErrGiftLineImmutable, got %v", err)
	}
}

func TestTierGiftsFollowPaidSubtotal(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	category := createCartTestCategory(t, db, "perfume")
	product := createCartTestProduct(t, db, category.ID, "santal-700", "100ml", 700)
	giftOne := createCartTestProduct(t, db, category.ID, "pocket-mist", "", 0)
	giftTwo := createCartTestProduct(t, db, category.ID, "travel-case", "", 0)
	createCartTestGiftTier(t, db, 799, giftOne.ID)
	createCartTestGiftTier(t, db, 1399, giftTwo.ID)

	// 700 is below the first tier, no gifts.
	item, err := svc.AddItem("tok-6", AddItemInput{ProductID: product.ID})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if gifts := countGiftLines(t, svc, "tok-6"); gifts != 0 {
		t.Fatalf("expected 0 gifts below tier-1, got %d", gifts)
	}

	// 1400 clears both thresholds.
	if err := svc.UpdateQuantity("tok-6", item.ItemKey, 2); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if gifts := countGiftLines(t, svc, "tok-6"); gifts != 2 {
		t.Fatalf("expected 2 gifts at 1400, got %d", gifts)
	}

	// Back to 700, both gifts must leave.
	if err := svc.UpdateQuantity("tok-6", item.ItemKey, 1); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if gifts := countGiftLines(t, svc, "tok-6"); gifts != 0 {
		t.Fatalf("expected 0 gifts back at 700, got %d", gifts)
	}
}

func TestTierGiftContributesNothingToSubtotal(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	category := createCartTestCategory(t, db, "perfume")
	product := createCartTestProduct(t, db, category.ID, "vetiver-850", "100ml", 850)
	accessory := createCartTestProduct(t, db, category.ID, "atomizer", "", 0)
	createCartTestGiftTier(t, db, 799, accessory.ID)

	if _, err := svc.AddItem("tok-7", AddItemInput{ProductID: product.ID}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	view, err := svc.GetCart("tok-7")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(view.Items) != 2 {
		t.Fatalf("expected paid line plus gift, got %d lines", len(view.Items))
	}
	if !view.Subtotal.Decimal.Equal(decimal.NewFromInt(850)) {
		t.Fatalf("expected subtotal 850, got %s", view.Subtotal.String())
	}
}

func TestRemoveItemDropsGiftWithSubtotal(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	category := createCartTestCategory(t, db, "perfume")
	product := createCartTestProduct(t, db, category.ID, "musk-900", "100ml", 900)
	accessory := createCartTestProduct(t, db, category.ID, "sample-vial", "", 0)
	createCartTestGiftTier(t, db, 799, accessory.ID)

	item, err := svc.AddItem("tok-8", AddItemInput{ProductID: product.ID})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if gifts := countGiftLines(t, svc, "tok-8"); gifts != 1 {
		t.Fatalf("expected 1 gift, got %d", gifts)
	}

	if err := svc.RemoveItem("tok-8", item.ItemKey); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	view, err := svc.GetCart("tok-8")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("expected empty cart after removing the only paid line, got %d", len(view.Items))
	}
}

func TestGetCartDropsDamagedRows(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	category := createCartTestCategory(t, db, "perfume")
	product := createCartTestProduct(t, db, category.ID, "cedar-400", "50ml", 400)

	if _, err := svc.AddItem("tok-9", AddItemInput{ProductID: product.ID}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	damaged := models.CartItem{
		CartToken: "tok-9",
		ItemKey:   "broken-row",
		Name:      "",
		Quantity:  1,
	}
	if err := db.Create(&damaged).Error; err != nil {
		t.Fatalf("insert damaged row failed: %v", err)
	}

	view, err := svc.GetCart("tok-9")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("expected damaged row filtered, got %d lines", len(view.Items))
	}
	if view.Items[0].ItemKey == "broken-row" {
		t.Fatalf("damaged row survived sanitization")
	}
}

func TestClearCartRemovesEverything(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	category := createCartTestCategory(t, db, "perfume")
	product := createCartTestProduct(t, db, category.ID, "fig-950", "100ml", 950)
	accessory := createCartTestProduct(t, db, category.ID, "ribbon-box", "", 0)
	createCartTestGiftTier(t, db, 799, accessory.ID)

	if _, err := svc.AddItem("tok-10", AddItemInput{ProductID: product.ID}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.ClearCart("tok-10"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	view, err := svc.GetCart("tok-10")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(view.Items))
	}
}

func TestCartTokenRequired(t *testing.T) {
	svc, _ := setupCartServiceTest(t)
	if _, err := svc.AddItem("  ", AddItemInput{ProductID: 1}); err != ErrCartTokenRequired {
		t.Fatalf("expected ErrCartTokenRequired, got %v", err)
	}
	if _, err := svc.GetCart(""); err != ErrCartTokenRequired {
		t.Fatalf("expected ErrCartTokenRequired, got %v", err)
	}
}

func countGiftLines(t *testing.T, svc *CartService, token string) int {
	t.Helper()
	view, err := svc.GetCart(token)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	count := 0
	for _, item := range view.Items {
		if item.IsGift {
			count++
		}
	}
	return count
}
