package slip

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/slips", ListPending)
	router.POST("/slips/:id/resolve", Resolve)
}
