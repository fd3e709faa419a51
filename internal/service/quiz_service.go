package service

import (
	"sort"

	"github.com/scentora-shop/internal/models"
	"github.com/scentora-shop/internal/repository"
)

const quizMatchLimit = 3

// QuizService powers the scent-matching quiz: questions out, ranked
// product matches back.
type QuizService struct {
	quizRepo    repository.QuizRepository
	productRepo repository.ProductRepository
}

// NewQuizService creates a quiz service.
func NewQuizService(quizRepo repository.QuizRepository, productRepo repository.ProductRepository) *QuizService {
	return &QuizService{quizRepo: quizRepo, productRepo: productRepo}
}

// Questions returns the quiz with its options in display order.
func (s *QuizService) Questions() ([]models.QuizQuestion, error) {
	return s.quizRepo.ListQuestions()
}

// QuizMatch is one recommended product with its overlap score.
type QuizMatch struct {
	Product models.Product `json:"product"`
	Score   int            `json:"score"`
}

// Match scores active products by scent-tag overlap with the chosen
// options and returns the top matches.
func (s *QuizService) Match(optionIDs []uint) ([]QuizMatch, error) {
	if len(optionIDs) == 0 {
		return nil, ErrQuizAnswerInvalid
	}
	options, err := s.quizRepo.ListOptionsByIDs(optionIDs)
	if err != nil {
		return nil, err
	}
	if len(options) != len(uniqueIDs(optionIDs)) {
		return nil, ErrQuizAnswerInvalid
	}

	wanted := make(map[string]int)
	for _, option := range options {
		for _, tag := range option.ScentTags {
			wanted[tag]++
		}
	}

	products, err := s.productRepo.ListActive()
	if err != nil {
		return nil, err
	}

	matches := make([]QuizMatch, 0, len(products))
	for _, product := range products {
		score := 0
		for _, tag := range product.ScentTags {
			score += wanted[tag]
		}
		if score > 0 {
			matches = append(matches, QuizMatch{Product: product, Score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > quizMatchLimit {
		matches = matches[:quizMatchLimit]
	}
	return matches, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
