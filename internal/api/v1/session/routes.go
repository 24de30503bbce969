package session

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup) {
	r.PUT("/sessions/:telegramId", Put)
	r.GET("/sessions/:telegramId", Get)
	r.DELETE("/sessions/:telegramId", Delete)
}
