package admin

import (
	"strconv"

	"github.com/scentora-shop/internal/http/response"
	"github.com/scentora-shop/internal/service"

	"github.com/gin-gonic/gin"
)

var giftTierAdminErrorRules = []adminErrorRule{
	{target: service.ErrGiftTierInvalid, code: response.CodeBadRequest, msg: "gift tier invalid"},
	{target: service.ErrProductNotFound, code: response.CodeBadRequest, msg: "gift product not found"},
}

// ListGiftTiers returns all gift tiers.
func (h *Handler) ListGiftTiers(c *gin.Context) {
	tiers, err := h.GiftTierService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "gift tier list failed", err)
		return
	}
	response.Success(c, gin.H{"items": tiers})
}

// CreateGiftTier inserts a gift tier.
func (h *Handler) CreateGiftTier(c *gin.Context) {
	var req service.GiftTierInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	tier, err := h.GiftTierService.Create(req)
	if err != nil {
		respondAdminError(c, err, giftTierAdminErrorRules, "gift tier create failed")
		return
	}
	response.Success(c, gin.H{"tier": tier})
}

// UpdateGiftTier applies edits to a gift tier.
func (h *Handler) UpdateGiftTier(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid gift tier id")
		return
	}
	var req service.GiftTierInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	tier, err := h.GiftTierService.Update(uint(id), req)
	if err != nil {
		respondAdminError(c, err, giftTierAdminErrorRules, "gift tier update failed")
		return
	}
	response.Success(c, gin.H{"tier": tier})
}

// DeleteGiftTier removes a gift tier.
func (h *Handler) DeleteGiftTier(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid gift tier id")
		return
	}
	if err := h.GiftTierService.Delete(uint(id)); err != nil {
		respondAdminError(c, err, giftTierAdminErrorRules, "gift tier delete failed")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
