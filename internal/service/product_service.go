package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/scentora-shop/internal/cache"
	"github.com/scentora-shop/internal/models"
	"github.com/scentora-shop/internal/repository"
)

const productCacheTTL = 5 * time.Minute

// ProductService serves the public catalog and the admin product CRUD.
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates a product service.
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{productRepo: productRepo, categoryRepo: categoryRepo}
}

// ProductListInput is the public catalog query.
type ProductListInput struct {
	Page         int
	PageSize     int
	CategorySlug string
	Size         string
	Search       string
}

// ProductListResult pages the catalog.
type ProductListResult struct {
	Items    []models.Product `json:"items"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// List returns active products, cached for browse queries without search.
func (s *ProductService) List(ctx context.Context, input ProductListInput) (*ProductListResult, error) {
	input.Search = strings.TrimSpace(input.Search)
	if input.Page <= 0 {
		input.Page = 1
	}
	if input.PageSize <= 0 || input.PageSize > 100 {
		input.PageSize = 24
	}

	cacheable := input.Search == ""
	cacheKey := fmt.Sprintf("products:list:%s:%s:%d:%d", input.CategorySlug, input.Size, input.Page, input.PageSize)
	if cacheable {
		var cached ProductListResult
		hit, cacheErr := cache.GetJSON(ctx, cacheKey, &cached)
		if cacheErr == nil && hit {
			return &cached, nil
		}
	}

	items, total, err := s.productRepo.List(repository.ProductListFilter{
		Page:         input.Page,
		PageSize:     input.PageSize,
		CategorySlug: input.CategorySlug,
		Size:         input.Size,
		Search:       input.Search,
		OnlyActive:   true,
		WithCategory: true,
	})
	if err != nil {
		return nil, err
	}

	result := &ProductListResult{
		Items:    items,
		Total:    total,
		Page:     input.Page,
		PageSize: input.PageSize,
	}
	if cacheable {
		_ = cache.SetJSON(ctx, cacheKey, result, productCacheTTL)
	}
	return result, nil
}

// GetBySlug returns one active product for the detail page.
func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrProductNotFound
	}

	cacheKey := "products:slug:" + slug
	var cached models.Product
	hit, cacheErr := cache.GetJSON(ctx, cacheKey, &cached)
	if cacheErr == nil && hit {
		return &cached, nil
	}

	product, err := s.productRepo.GetBySlug(slug, true)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	_ = cache.SetJSON(ctx, cacheKey, product, productCacheTTL)
	return product, nil
}

// AdminList returns products for the admin panel, inactive included.
func (s *ProductService) AdminList(input ProductListInput) (*ProductListResult, error) {
	if input.Page <= 0 {
		input.Page = 1
	}
	if input.PageSize <= 0 || input.PageSize > 100 {
		input.PageSize = 24
	}
	items, total, err := s.productRepo.List(repository.ProductListFilter{
		Page:         input.Page,
		PageSize:     input.PageSize,
		CategorySlug: input.CategorySlug,
		Size:         input.Size,
		Search:       strings.TrimSpace(input.Search),
		WithCategory: true,
	})
	if err != nil {
		return nil, err
	}
	return &ProductListResult{Items: items, Total: total, Page: input.Page, PageSize: input.PageSize}, nil
}

// ProductInput carries admin create/update fields.
type ProductInput struct {
	CategoryID       uint                  `json:"category_id"`
	Slug             string                `json:"slug"`
	Name             string                `json:"name"`
	ShortDescription string                `json:"short_description"`
	Inspiration      string                `json:"inspiration"`
	Size             string                `json:"size"`
	Price            models.Money          `json:"price"`
	Images           models.StringArray    `json:"images"`
	ScentTags        models.StringArray    `json:"scent_tags"`
	IsActive         *bool                 `json:"is_active"`
	SortOrder        int                   `json:"sort_order"`
	Bottles          []models.BottleOption `json:"bottles"`
}

// Create validates and inserts a product with its bottle options.
func (s *ProductService) Create(ctx context.Context, input ProductInput) (*models.Product, error) {
	input.Slug = strings.TrimSpace(input.Slug)
	input.Name = strings.TrimSpace(input.Name)
	if input.Slug == "" || input.Name == "" {
		return nil, ErrProductInvalid
	}
	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	count, err := s.productRepo.CountBySlug(input.Slug, 0)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugTaken
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}
	product := &models.Product{
		CategoryID:       input.CategoryID,
		Slug:             input.Slug,
		Name:             input.Name,
		ShortDescription: input.ShortDescription,
		Inspiration:      input.Inspiration,
		Size:             input.Size,
		PriceAmount:      input.Price,
		Images:           input.Images,
		ScentTags:        input.ScentTags,
		IsActive:         active,
		SortOrder:        input.SortOrder,
		Bottles:          input.Bottles,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx, product.Slug)
	return product, nil
}

// Update applies admin edits, replacing bottle options wholesale.
func (s *ProductService) Update(ctx context.Context, id uint, input ProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	oldSlug := product.Slug
	input.Slug = strings.TrimSpace(input.Slug)
	if input.Slug != "" && input.Slug != product.Slug {
		count, err := s.productRepo.CountBySlug(input.Slug, id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrSlugTaken
		}
		product.Slug = input.Slug
	}
	if input.CategoryID != 0 && input.CategoryID != product.CategoryID {
		category, err := s.categoryRepo.GetByID(input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
		product.CategoryID = input.CategoryID
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		product.Name = name
	}
	product.ShortDescription = input.ShortDescription
	product.Inspiration = input.Inspiration
	if input.Size != "" {
		product.Size = input.Size
	}
	if input.Price.Decimal.IsPositive() {
		product.PriceAmount = input.Price
	}
	product.Images = input.Images
	product.ScentTags = input.ScentTags
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	product.SortOrder = input.SortOrder
	if input.Bottles != nil {
		if err := s.productRepo.DeleteBottlesByProduct(product.ID); err != nil {
			return nil, err
		}
		for i := range input.Bottles {
			input.Bottles[i].ID = 0
			input.Bottles[i].ProductID = product.ID
		}
		product.Bottles = input.Bottles
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx, oldSlug)
	if product.Slug != oldSlug {
		s.invalidateCache(ctx, product.Slug)
	}
	return product, nil
}

// Delete soft-removes a product.
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateCache(ctx, product.Slug)
	return nil
}

func (s *ProductService) invalidateCache(ctx context.Context, slug string) {
	_ = cache.Del(ctx, "products:slug:"+slug)
	_ = cache.DelByPrefix(ctx, "products:list:")
}
