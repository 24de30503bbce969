package upgrade

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/upgrades", ListPending)
	router.POST("/upgrades/:id/resolve", Resolve)
}
