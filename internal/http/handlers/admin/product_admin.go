package admin

import (
	"errors"
	"strconv"

	handlershared "github.com/scentora-shop/internal/http/handlers/shared"
	"github.com/scentora-shop/internal/http/response"
	"github.com/scentora-shop/internal/service"

	"github.com/gin-gonic/gin"
)

type adminErrorRule struct {
	target error
	code   int
	msg    string
}

var productAdminErrorRules = []adminErrorRule{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, msg: "product not found"},
	{target: service.ErrProductInvalid, code: response.CodeBadRequest, msg: "slug and name are required"},
	{target: service.ErrCategoryNotFound, code: response.CodeBadRequest, msg: "category not found"},
	{target: service.ErrSlugTaken, code: response.CodeConflict, msg: "slug already in use"},
}

func respondAdminError(c *gin.Context, err error, rules []adminErrorRule, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, response.CodeInternal, fallbackMsg, err)
}

// ListProducts returns all products for the admin panel.
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	result, err := h.ProductService.AdminList(service.ProductListInput{
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

// CreateProduct inserts a product.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req service.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	product, err := h.ProductService.Create(c.Request.Context(), req)
	if err != nil {
		respondAdminError(c, err, productAdminErrorRules, "product create failed")
		return
	}
	response.Success(c, gin.H{"product": product})
}

// UpdateProduct applies edits to a product.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}
	var req service.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	product, err := h.ProductService.Update(c.Request.Context(), uint(id), req)
	if err != nil {
		respondAdminError(c, err, productAdminErrorRules, "product update failed")
		return
	}
	response.Success(c, gin.H{"product": product})
}

// DeleteProduct removes a product.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}
	if err := h.ProductService.Delete(c.Request.Context(), uint(id)); err != nil {
		respondAdminError(c, err, productAdminErrorRules, "product delete failed")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
