package admin

import (
	"strconv"

	"github.com/scentora-shop/internal/http/response"
	"github.com/scentora-shop/internal/service"

	"github.com/gin-gonic/gin"
)

var categoryAdminErrorRules = []adminErrorRule{
	{target: service.ErrCategoryNotFound, code: response.CodeNotFound, msg: "category not found"},
	{target: service.ErrSlugTaken, code: response.CodeConflict, msg: "slug already in use"},
}

// ListCategories returns all categories.
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "category list failed", err)
		return
	}
	response.Success(c, gin.H{"items": categories})
}

// CreateCategory inserts a category.
func (h *Handler) CreateCategory(c *gin.Context) {
	var req service.CategoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	category, err := h.CategoryService.Create(req)
	if err != nil {
		respondAdminError(c, err, categoryAdminErrorRules, "category create failed")
		return
	}
	response.Success(c, gin.H{"category": category})
}

// UpdateCategory applies edits to a category.
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}
	var req service.CategoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	category, err := h.CategoryService.Update(uint(id), req)
	if err != nil {
		respondAdminError(c, err, categoryAdminErrorRules, "category update failed")
		return
	}
	response.Success(c, gin.H{"category": category})
}

// DeleteCategory removes a category.
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}
	if err := h.CategoryService.Delete(uint(id)); err != nil {
		respondAdminError(c, err, categoryAdminErrorRules, "category delete failed")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
