package public

import (
	handlershared "github.com/scentora-shop/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func getCartToken(c *gin.Context) (string, bool) {
	return handlershared.GetCartToken(c)
}

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}
