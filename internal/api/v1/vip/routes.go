package vip

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/vip/pricing", Pricing)
	r.POST("/vip/slips", SubmitSlip)
	r.POST("/vip/upgrades", RequestUpgrade)
}
