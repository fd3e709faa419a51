package public

import (
	"errors"
	"strconv"

	handlershared "github.com/scentora-shop/internal/http/handlers/shared"
	"github.com/scentora-shop/internal/http/response"
	"github.com/scentora-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// ListProducts returns the active catalog, filterable by category and size.
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "24"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	result, err := h.ProductService.List(c.Request.Context(), service.ProductListInput{
		Page:         page,
		PageSize:     pageSize,
		CategorySlug: c.Query("category"),
		Size:         c.Query("size"),
		Search:       c.Query("search"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "product list failed", err)
		return
	}

	response.SuccessWithPage(c, gin.H{"items": result.Items}, response.Pagination{
		Page:      result.Page,
		PageSize:  result.PageSize,
		Total:     result.Total,
		TotalPage: handlershared.TotalPages(result.Total, result.PageSize),
	})
}

// GetProduct returns one active product by slug.
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.ProductService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.NotFound(c, "product not found")
			return
		}
		respondError(c, response.CodeInternal, "product fetch failed", err)
		return
	}
	response.Success(c, gin.H{"product": product})
}

// ListCategories returns all categories in display order.
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "category list failed", err)
		return
	}
	response.Success(c, gin.H{"items": categories})
}

// ListGiftTiers exposes the spend thresholds so the storefront can show
// progress toward the next free gift.
func (h *Handler) ListGiftTiers(c *gin.Context) {
	tiers, err := h.GiftTierService.ListActive()
	if err != nil {
		respondError(c, response.CodeInternal, "gift tier list failed", err)
		return
	}
	response.Success(c, gin.H{"items": tiers})
}
