package shared

import (
	"strings"

	"github.com/scentora-shop/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CartTokenHeader carries the anonymous cart identity.
const CartTokenHeader = "X-Cart-Token"

const maxCartTokenLength = 128

// GetCartToken reads the cart token header and rejects the request when
// it is missing or malformed.
func GetCartToken(c *gin.Context) (string, bool) {
	token := strings.TrimSpace(c.GetHeader(CartTokenHeader))
	if token == "" || len(token) > maxCartTokenLength {
		RespondError(c, response.CodeBadRequest, "cart token required", nil)
		return "", false
	}
	return token, true
}
