package repository

import (
	"github.com/scentora-shop/internal/models"

	"gorm.io/gorm"
)

// QuizRepository is the scent quiz data access interface.
type QuizRepository interface {
	ListQuestions() ([]models.QuizQuestion, error)
	ListOptionsByIDs(ids []uint) ([]models.QuizOption, error)
	CreateQuestion(question *models.QuizQuestion) error
}

// GormQuizRepository is the GORM implementation.
type GormQuizRepository struct {
	db *gorm.DB
}

// NewQuizRepository creates a quiz repository.
func NewQuizRepository(db *gorm.DB) *GormQuizRepository {
	return &GormQuizRepository{db: db}
}

// ListQuestions returns all questions with their options in quiz order.
func (r *GormQuizRepository) ListQuestions() ([]models.QuizQuestion, error) {
	var questions []models.QuizQuestion
	err := r.db.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC, id ASC")
	}).Order("sort_order ASC, id ASC").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// ListOptionsByIDs returns the options matching the given ids.
func (r *GormQuizRepository) ListOptionsByIDs(ids []uint) ([]models.QuizOption, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var options []models.QuizOption
	if err := r.db.Where("id IN ?", ids).Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

// CreateQuestion inserts a question with its options.
func (r *GormQuizRepository) CreateQuestion(question *models.QuizQuestion) error {
	return r.db.Create(question).Error
}
