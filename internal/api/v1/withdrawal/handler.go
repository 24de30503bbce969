package withdrawal

import (
	"errors"
	"net/http"
	"referralvip-backend/internal/services"
	"referralvip-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// Request godoc
// @Summary Request a withdrawal
// @Description Amount plus the flat fee is held from the balance immediately.
// @Tags withdrawals
// @Accept  json
// @Produce  json
// @Param   input     body   WithdrawRequest  true  "Withdraw Request"
// @Success 201 {object} utils.Response{data=withdrawal.WithdrawResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /withdrawals [post]
func Request(c *gin.Context) {
	var input WithdrawRequest
	if !utils.BindAndValidate(c, &input) {
		return
	}

	w, err := services.RequestWithdrawal(input.TelegramID, input.Amount)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Account not found"))
		case errors.Is(err, services.ErrNoPaymentDetails):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Payment details must be set before withdrawing"))
		case errors.Is(err, services.ErrBelowMinimum):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Amount is below the minimum withdrawal"))
		case errors.Is(err, services.ErrInsufficientBalance):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Insufficient balance to cover amount and fee"))
		case errors.Is(err, services.ErrOptimisticLock):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to request withdrawal"))
		}
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Withdrawal requested", WithdrawResponse{
		ID:          w.ID,
		Amount:      w.Amount,
		Fee:         w.Fee,
		Status:      w.Status,
		RequestedAt: w.RequestedAt,
	}))
}
