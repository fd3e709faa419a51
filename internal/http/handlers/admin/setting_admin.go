package admin

import (
	"github.com/scentora-shop/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetCartSettings returns the effective storefront pricing settings.
func (h *Handler) GetCartSettings(c *gin.Context) {
	settings, err := h.SettingService.CartSettings()
	if err != nil {
		respondError(c, response.CodeInternal, "settings fetch failed", err)
		return
	}
	response.Success(c, gin.H{"settings": settings})
}

// UpdateCartSettings replaces the stored cart configuration overrides.
func (h *Handler) UpdateCartSettings(c *gin.Context) {
	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	value, err := h.SettingService.UpdateCartSettings(req)
	if err != nil {
		respondError(c, response.CodeInternal, "settings update failed", err)
		return
	}
	response.Success(c, gin.H{"settings": value})
}
