package main

import (
	"github.com/scentora-shop/internal/config"
	"github.com/scentora-shop/internal/logger"
	"github.com/scentora-shop/internal/models"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("failed to connect database: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("failed to migrate database: %v", err)
	}

	db := models.DB

	categories := []models.Category{
		{Slug: "perfume", Name: "Perfumes", SortOrder: 1},
		{Slug: "kit", Name: "Discovery Kits", SortOrder: 2},
		{Slug: "accessory", Name: "Accessories", SortOrder: 3},
	}
	for i := range categories {
		if err := db.Where(models.Category{Slug: categories[i].Slug}).
			FirstOrCreate(&categories[i]).Error; err != nil {
			stdLog.Fatalf("failed to seed category %s: %v", categories[i].Slug, err)
		}
	}
	perfumeID := categories[0].ID
	accessoryID := categories[2].ID

	bottles := []models.BottleOption{
		{Name: "Classic Clear", Surcharge: models.NewMoneyFromInt(0), SortOrder: 1},
		{Name: "Matte Black", Surcharge: models.NewMoneyFromInt(49), SortOrder: 2},
		{Name: "Frosted Gold", Surcharge: models.NewMoneyFromInt(99), SortOrder: 3},
	}

	products := []models.Product{
		{
			CategoryID:       perfumeID,
			Slug:             "midnight-oud-50ml",
			Name:             "Midnight Oud",
			ShortDescription: "Deep smoky oud wrapped in warm amber.",
			Inspiration:      "Oud Wood",
			Size:             "50ml",
			PriceAmount:      models.NewMoneyFromInt(449),
			Images:           models.StringArray{"/uploads/midnight-oud.jpg"},
			ScentTags:        models.StringArray{"woody", "smoky", "warm"},
			IsActive:         true,
			SortOrder:        1,
		},
		{
			CategoryID:       perfumeID,
			Slug:             "citrus-veil-50ml",
			Name:             "Citrus Veil",
			ShortDescription: "Sparkling bergamot over a crisp green heart.",
			Inspiration:      "Light Blue",
			Size:             "50ml",
			PriceAmount:      models.NewMoneyFromInt(399),
			Images:           models.StringArray{"/uploads/citrus-veil.jpg"},
			ScentTags:        models.StringArray{"citrus", "fresh", "green"},
			IsActive:         true,
			SortOrder:        2,
		},
		{
			CategoryID:       perfumeID,
			Slug:             "rose-ember-50ml",
			Name:             "Rose Ember",
			ShortDescription: "Velvet rose lifted by pink pepper and musk.",
			Inspiration:      "Rose Prick",
			Size:             "50ml",
			PriceAmount:      models.NewMoneyFromInt(429),
			Images:           models.StringArray{"/uploads/rose-ember.jpg"},
			ScentTags:        models.StringArray{"floral", "spicy", "warm"},
			IsActive:         true,
			SortOrder:        3,
		},
		{
			CategoryID:       perfumeID,
			Slug:             "ocean-drift-50ml",
			Name:             "Ocean Drift",
			ShortDescription: "Sea salt and driftwood with a cool aquatic finish.",
			Inspiration:      "Acqua di Gio",
			Size:             "50ml",
			PriceAmount:      models.NewMoneyFromInt(399),
			Images:           models.StringArray{"/uploads/ocean-drift.jpg"},
			ScentTags:        models.StringArray{"aquatic", "fresh", "marine"},
			IsActive:         true,
			SortOrder:        4,
		},
		{
			CategoryID:       perfumeID,
			Slug:             "vanilla-noir-100ml",
			Name:             "Vanilla Noir",
			ShortDescription: "Dark vanilla bean under a veil of tonka and cocoa.",
			Inspiration:      "Black Opium",
			Size:             "100ml",
			PriceAmount:      models.NewMoneyFromInt(699),
			Images:           models.StringArray{"/uploads/vanilla-noir.jpg"},
			ScentTags:        models.StringArray{"sweet", "gourmand", "warm"},
			IsActive:         true,
			SortOrder:        5,
		},
		{
			CategoryID:       perfumeID,
			Slug:             "santal-dusk-100ml",
			Name:             "Santal Dusk",
			ShortDescription: "Creamy sandalwood with cardamom and leather.",
			Inspiration:      "Santal 33",
			Size:             "100ml",
			PriceAmount:      models.NewMoneyFromInt(749),
			Images:           models.StringArray{"/uploads/santal-dusk.jpg"},
			ScentTags:        models.StringArray{"woody", "creamy", "leather"},
			IsActive:         true,
			SortOrder:        6,
		},
	}
	for i := range products {
		var existing models.Product
		err := db.Where("slug = ?", products[i].Slug).First(&existing).Error
		if err == nil {
			products[i] = existing
			continue
		}
		opts := make([]models.BottleOption, len(bottles))
		copy(opts, bottles)
		products[i].Bottles = opts
		if err := db.Create(&products[i]).Error; err != nil {
			stdLog.Fatalf("failed to seed product %s: %v", products[i].Slug, err)
		}
	}

	giftProducts := []models.Product{
		{
			CategoryID:       accessoryID,
			Slug:             "pocket-atomizer",
			Name:             "Pocket Atomizer",
			ShortDescription: "Refillable 8ml travel spray.",
			PriceAmount:      models.NewMoneyFromInt(199),
			Images:           models.StringArray{"/uploads/pocket-atomizer.jpg"},
			IsActive:         true,
			SortOrder:        1,
		},
		{
			CategoryID:       accessoryID,
			Slug:             "velvet-travel-pouch",
			Name:             "Velvet Travel Pouch",
			ShortDescription: "Padded pouch that fits one 100ml bottle.",
			PriceAmount:      models.NewMoneyFromInt(249),
			Images:           models.StringArray{"/uploads/velvet-pouch.jpg"},
			IsActive:         true,
			SortOrder:        2,
		},
	}
	for i := range giftProducts {
		if err := db.Where(models.Product{Slug: giftProducts[i].Slug}).
			FirstOrCreate(&giftProducts[i]).Error; err != nil {
			stdLog.Fatalf("failed to seed gift product %s: %v", giftProducts[i].Slug, err)
		}
	}

	tiers := []models.GiftTier{
		{Threshold: models.NewMoneyFromInt(799), ProductID: giftProducts[0].ID, IsActive: true},
		{Threshold: models.NewMoneyFromInt(1399), ProductID: giftProducts[1].ID, IsActive: true},
	}
	for i := range tiers {
		if err := db.Where(models.GiftTier{ProductID: tiers[i].ProductID}).
			FirstOrCreate(&tiers[i]).Error; err != nil {
			stdLog.Fatalf("failed to seed gift tier: %v", err)
		}
	}

	questions := []models.QuizQuestion{
		{
			Prompt:    "Where is this fragrance headed?",
			SortOrder: 1,
			Options: []models.QuizOption{
				{Label: "A late dinner", ScentTags: models.StringArray{"smoky", "warm", "leather"}, SortOrder: 1},
				{Label: "The office", ScentTags: models.StringArray{"fresh", "green", "citrus"}, SortOrder: 2},
				{Label: "A beach weekend", ScentTags: models.StringArray{"aquatic", "marine", "fresh"}, SortOrder: 3},
				{Label: "Date night", ScentTags: models.StringArray{"sweet", "gourmand", "floral"}, SortOrder: 4},
			},
		},
		{
			Prompt:    "Pick a texture",
			SortOrder: 2,
			Options: []models.QuizOption{
				{Label: "Polished wood", ScentTags: models.StringArray{"woody", "creamy"}, SortOrder: 1},
				{Label: "Cut grass", ScentTags: models.StringArray{"green", "fresh"}, SortOrder: 2},
				{Label: "Velvet", ScentTags: models.StringArray{"floral", "warm", "spicy"}, SortOrder: 3},
				{Label: "Sea spray", ScentTags: models.StringArray{"aquatic", "marine"}, SortOrder: 4},
			},
		},
	}
	var questionCount int64
	if err := db.Model(&models.QuizQuestion{}).Count(&questionCount).Error; err != nil {
		stdLog.Fatalf("failed to count quiz questions: %v", err)
	}
	if questionCount == 0 {
		for i := range questions {
			if err := db.Create(&questions[i]).Error; err != nil {
				stdLog.Fatalf("failed to seed quiz question: %v", err)
			}
		}
	}

	stdLog.Printf("seed complete: %d categories, %d products, %d gift tiers", len(categories), len(products)+len(giftProducts), len(tiers))
}
