package public

import (
	"errors"

	"github.com/scentora-shop/internal/http/response"
	"github.com/scentora-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError maps a business error to its response code and message.
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var cartCommonErrorRules = []mappedHandlerError{
	{target: service.ErrCartTokenRequired, code: response.CodeBadRequest, msg: "cart token required"},
	{target: service.ErrCartItemNotFound, code: response.CodeNotFound, msg: "cart item not found"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, msg: "product not found"},
	{target: service.ErrProductNotAvailable, code: response.CodeBadRequest, msg: "product not available"},
	{target: service.ErrBottleOptionInvalid, code: response.CodeBadRequest, msg: "bottle option invalid"},
	{target: service.ErrGiftLineImmutable, code: response.CodeBadRequest, msg: "gift items cannot be edited"},
}

var giftClaimErrorRules = []mappedHandlerError{
	{target: service.ErrGiftLocked, code: response.CodeBadRequest, msg: "free gift not unlocked yet"},
	{target: service.ErrGiftAlreadyClaimed, code: response.CodeConflict, msg: "free gift already claimed"},
	{target: service.ErrGiftNotEligible, code: response.CodeBadRequest, msg: "product not eligible as free gift"},
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, msg: "cart is empty"},
	{target: service.ErrCheckoutUnavailable, code: response.CodeUnavailable, msg: "checkout is not configured"},
}
