package service

import (
	"strings"

	"github.com/scentora-shop/internal/models"
	"github.com/scentora-shop/internal/repository"
)

// CategoryService serves category listing and admin CRUD.
type CategoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService creates a category service.
func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// List returns all categories in sort order.
func (s *CategoryService) List() ([]models.Category, error) {
	return s.repo.List()
}

// GetBySlug returns a category, ErrCategoryNotFound when absent.
func (s *CategoryService) GetBySlug(slug string) (*models.Category, error) {
	category, err := s.repo.GetBySlug(strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// CategoryInput carries admin create/update fields.
type CategoryInput struct {
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

// Create inserts a category.
func (s *CategoryService) Create(input CategoryInput) (*models.Category, error) {
	input.Slug = strings.TrimSpace(input.Slug)
	input.Name = strings.TrimSpace(input.Name)
	if input.Slug == "" || input.Name == "" {
		return nil, ErrCategoryNotFound
	}
	existing, err := s.repo.GetBySlug(input.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlugTaken
	}
	category := &models.Category{
		Slug:      input.Slug,
		Name:      input.Name,
		SortOrder: input.SortOrder,
	}
	if err := s.repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update applies admin edits.
func (s *CategoryService) Update(id uint, input CategoryInput) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	if slug := strings.TrimSpace(input.Slug); slug != "" && slug != category.Slug {
		existing, err := s.repo.GetBySlug(slug)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, ErrSlugTaken
		}
		category.Slug = slug
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		category.Name = name
	}
	category.SortOrder = input.SortOrder
	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category.
func (s *CategoryService) Delete(id uint) error {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return s.repo.Delete(id)
}
