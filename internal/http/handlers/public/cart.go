package public

import (
	"github.com/scentora-shop/internal/http/response"
	"github.com/scentora-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest adds one unit of a product, optionally with a bottle.
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	BottleID  uint `json:"bottle_id"`
}

// UpdateCartItemRequest sets a line's quantity.
type UpdateCartItemRequest struct {
	ItemKey  string `json:"item_key" binding:"required"`
	Quantity int    `json:"quantity"`
}

// RemoveCartItemRequest removes one line.
type RemoveCartItemRequest struct {
	ItemKey string `json:"item_key" binding:"required"`
}

// GetCart returns the cart with totals and the quote for the requested
// offer mode.
func (h *Handler) GetCart(c *gin.Context) {
	token, ok := getCartToken(c)
	if !ok {
		return
	}

	view, err := h.CartService.GetCart(token)
	if err != nil {
		respondWithMappedError(c, err, cartCommonErrorRules, response.CodeInternal, "cart fetch failed")
		return
	}
	breakdown, err := h.CartService.Quote(token, c.Query("offer_mode"))
	if err != nil {
		respondWithMappedError(c, err, cartCommonErrorRules, response.CodeInternal, "cart fetch failed")
		return
	}

	response.Success(c, gin.H{
		"items":       view.Items,
		"total_items": view.TotalItems,
		"subtotal":    view.Subtotal,
		"breakdown":   breakdown,
	})
}

// AddCartItem adds one unit of a product to the cart.
func (h *Handler) AddCartItem(c *gin.Context) {
	token, ok := getCartToken(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	item, err := h.CartService.AddItem(token, service.AddItemInput{
		ProductID: req.ProductID,
		BottleID:  req.BottleID,
	})
	if err != nil {
		respondWithMappedError(c, err, cartCommonErrorRules, response.CodeInternal, "cart update failed")
		return
	}
	response.Success(c, gin.H{"item": item})
}

// UpdateCartItem sets a line's quantity; zero or below removes the line.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	token, ok := getCartToken(c)
	if !ok {
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	if err := h.CartService.UpdateQuantity(token, req.ItemKey, req.Quantity); err != nil {
		respondWithMappedError(c, err, cartCommonErrorRules, response.CodeInternal, "cart update failed")
		return
	}
	response.Success(c, gin.H{"updated": true})
}

// RemoveCartItem removes one line from the cart.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	token, ok := getCartToken(c)
	if !ok {
		return
	}
	var req RemoveCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	if err := h.CartService.RemoveItem(token, req.ItemKey); err != nil {
		respondWithMappedError(c, err, cartCommonErrorRules, response.CodeInternal, "cart update failed")
		return
	}
	response.Success(c, gin.H{"removed": true})
}

// ClearCart empties the cart.
func (h *Handler) ClearCart(c *gin.Context) {
	token, ok := getCartToken(c)
	if !ok {
		return
	}
	if err := h.CartService.ClearCart(token); err != nil {
		respondWithMappedError(c, err, cartCommonErrorRules, response.CodeInternal, "cart update failed")
		return
	}
	response.Success(c, gin.H{"cleared": true})
}

// SelectOfferModeRequest switches the active offer mode.
type SelectOfferModeRequest struct {
	Mode string `json:"mode" binding:"required"`
}

// SelectOfferMode applies an offer mode and returns the fresh quote.
func (h *Handler) SelectOfferMode(c *gin.Context) {
	token, ok := getCartToken(c)
	if !ok {
		return
	}
	var req SelectOfferModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	mode, err := h.CartService.SelectOfferMode(token, req.Mode)
	if err != nil {
		respondWithMappedError(c, err, cartCommonErrorRules, response.CodeInternal, "offer mode change failed")
		return
	}
	breakdown, err := h.CartService.Quote(token, mode)
	if err != nil {
		respondWithMappedError(c, err, cartCommonErrorRules, response.CodeInternal, "offer mode change failed")
		return
	}
	response.Success(c, gin.H{"mode": mode, "breakdown": breakdown})
}

// ClaimGiftRequest picks the free 50ml product.
type ClaimGiftRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// ClaimGift adds the chosen free 50ml once the offer is unlocked.
func (h *Handler) ClaimGift(c *gin.Context) {
	token, ok := getCartToken(c)
	if !ok {
		return
	}
	var req ClaimGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	rules := append(append([]mappedHandlerError{}, giftClaimErrorRules...), cartCommonErrorRules...)
	gift, err := h.CartService.ClaimGift(token, req.ProductID)
	if err != nil {
		respondWithMappedError(c, err, rules, response.CodeInternal, "gift claim failed")
		return
	}
	response.Success(c, gin.H{"item": gift})
}

// UnclaimGift removes the claimed free gift from the cart.
func (h *Handler) UnclaimGift(c *gin.Context) {
	token, ok := getCartToken(c)
	if !ok {
		return
	}
	if err := h.CartService.UnclaimGift(token); err != nil {
		respondWithMappedError(c, err, cartCommonErrorRules, response.CodeInternal, "gift unclaim failed")
		return
	}
	response.Success(c, gin.H{"removed": true})
}
