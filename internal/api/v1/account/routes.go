package account

import (
	"referralvip-backend/config"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, cfg *config.Config) {
	botUsername = cfg.BotUsername

	r.POST("/accounts/register", Register)
	r.POST("/accounts/verify", Verify)
	r.GET("/accounts/:telegramId", Get)
	r.PUT("/accounts/:telegramId/payment-details", UpdatePaymentDetails)
	r.GET("/accounts/:telegramId/referrals", ListReferrals)
	r.GET("/accounts/:telegramId/withdrawals", ListWithdrawals)
}
