package session

import (
	"net/http"
	"referralvip-backend/internal/services"
	"referralvip-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type PutSessionRequest struct {
	Command string            `json:"command" binding:"required"`
	Step    string            `json:"step" binding:"required"`
	Data    map[string]string `json:"data"`
}

// Put stores the multi-step conversation state for a user, replacing any
// session already in flight.
func Put(c *gin.Context) {
	var input PutSessionRequest
	if !utils.BindAndValidate(c, &input) {
		return
	}

	err := services.SetSession(c.Param("telegramId"), services.Session{
		Command: input.Command,
		Step:    input.Step,
		Data:    input.Data,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to store session"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Session stored", nil))
}

// Get returns the active session. A user with no session gets 404, which the
// transport treats as "no flow in progress".
func Get(c *gin.Context) {
	session, err := services.GetSession(c.Param("telegramId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch session"))
		return
	}
	if session == nil {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "No active session"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Session fetched", session))
}

func Delete(c *gin.Context) {
	if err := services.ClearSession(c.Param("telegramId")); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to clear session"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Session cleared", nil))
}
