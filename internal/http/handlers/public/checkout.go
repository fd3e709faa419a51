package public

import (
	"github.com/scentora-shop/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CheckoutRequest carries the offer mode the order is priced under.
type CheckoutRequest struct {
	Mode string `json:"mode"`
}

// BuildCheckout renders the order message and WhatsApp link for the cart.
func (h *Handler) BuildCheckout(c *gin.Context) {
	token, ok := getCartToken(c)
	if !ok {
		return
	}
	// Mode is optional; an empty body means the default gift mode.
	var req CheckoutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, response.CodeBadRequest, "bad request", err)
			return
		}
	}

	rules := append(append([]mappedHandlerError{}, checkoutErrorRules...), cartCommonErrorRules...)
	result, err := h.CheckoutService.BuildOrder(token, req.Mode)
	if err != nil {
		respondWithMappedError(c, err, rules, response.CodeInternal, "checkout build failed")
		return
	}
	response.Success(c, result)
}
