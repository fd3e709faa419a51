package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/scentora-shop/internal/models"
	"github.com/scentora-shop/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupQuizServiceTest(t *testing.T) (*QuizService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:quiz_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.BottleOption{},
		&models.QuizQuestion{},
		&models.QuizOption{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewQuizService(repository.NewQuizRepository(db), repository.NewProductRepository(db)), db
}

func TestQuizMatchRanksByTagOverlap(t *testing.T) {
	svc, db := setupQuizServiceTest(t)

	category := createCartTestCategory(t, db, "perfume")
	woody := models.Product{
		CategoryID: category.ID, Slug: "woody", Name: "Woody", IsActive: true,
		PriceAmount: models.NewMoneyFromInt(400),
		ScentTags:   models.StringArray{"woody", "warm"},
	}
	citrus := models.Product{
		CategoryID: category.ID, Slug: "citrus", Name: "Citrus", IsActive: true,
		PriceAmount: models.NewMoneyFromInt(400),
		ScentTags:   models.StringArray{"citrus", "fresh"},
	}
	hidden := models.Product{
		CategoryID: category.ID, Slug: "hidden", Name: "Hidden", IsActive: false,
		PriceAmount: models.NewMoneyFromInt(400),
		ScentTags:   models.StringArray{"woody", "warm"},
	}
	for _, p := range []*models.Product{&woody, &citrus, &hidden} {
		if err := db.Create(p).Error; err != nil {
			t.Fatalf("create product failed: %v", err)
		}
	}

	question := models.QuizQuestion{Prompt: "Pick a mood"}
	if err := db.Create(&question).Error; err != nil {
		t.Fatalf("create question failed: %v", err)
	}
	optionWarm := models.QuizOption{QuestionID: question.ID, Label: "Cozy evening", ScentTags: models.StringArray{"woody", "warm"}}
	optionFresh := models.QuizOption{QuestionID: question.ID, Label: "Morning air", ScentTags: models.StringArray{"fresh"}}
	for _, o := range []*models.QuizOption{&optionWarm, &optionFresh} {
		if err := db.Create(o).Error; err != nil {
			t.Fatalf("create option failed: %v", err)
		}
	}

	matches, err := svc.Match([]uint{optionWarm.ID})
	if err != nil {
		t.Fatalf("match failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected only the woody product, got %d matches", len(matches))
	}
	if matches[0].Product.Slug != "woody" {
		t.Fatalf("expected woody first, got %s", matches[0].Product.Slug)
	}
	if matches[0].Score != 2 {
		t.Fatalf("expected score 2, got %d", matches[0].Score)
	}

	matches, err = svc.Match([]uint{optionWarm.ID, optionFresh.ID})
	if err != nil {
		t.Fatalf("match failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected both products, got %d matches", len(matches))
	}
	if matches[0].Product.Slug != "woody" {
		t.Fatalf("expected woody ranked first, got %s", matches[0].Product.Slug)
	}
}

func TestQuizMatchRejectsUnknownOption(t *testing.T) {
	svc, _ := setupQuizServiceTest(t)
	if _, err := svc.Match([]uint{12345}); err != ErrQuizAnswerInvalid {
		t.Fatalf("expected ErrQuizAnswerInvalid, got %v", err)
	}
	if _, err := svc.Match(nil); err != ErrQuizAnswerInvalid {
		t.Fatalf("expected ErrQuizAnswerInvalid, got %v", err)
	}
}
