package account

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/accounts", ListAccounts)
	router.GET("/accounts/:id/upgrades", UpgradeHistory)
	router.POST("/accounts/:id/adjustments", Adjust)
}
