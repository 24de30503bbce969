package withdrawal

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/withdrawals", ListPending)
	router.POST("/accounts/:id/withdrawals/:withdrawalId/resolve", Resolve)
}
