package middleware

import (
	"crypto/subtle"
	"net/http"
	"referralvip-backend/config"
	"referralvip-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// BotAuthMiddleware authenticates the chat transport. The bot process is the
// only caller of the user-facing routes and presents a shared service token;
// end users never talk to this API directly.
func BotAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.BotServiceToken == "" {
			c.JSON(http.StatusServiceUnavailable, utils.NewErrorResponse(http.StatusServiceUnavailable, "Bot service token not configured"))
			c.Abort()
			return
		}

		token := c.GetHeader("X-Bot-Token")
		if subtle.ConstantTimeCompare([]byte(token), []byte(cfg.BotServiceToken)) != 1 {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Invalid bot service token"))
			c.Abort()
			return
		}

		c.Next()
	}
}
