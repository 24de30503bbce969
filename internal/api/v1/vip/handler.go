package vip

import (
	"errors"
	"net/http"
	"referralvip-backend/internal/api/v1/account"
	"referralvip-backend/internal/pricing"
	"referralvip-backend/internal/services"
	"referralvip-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// Pricing godoc
// @Summary List VIP tiers with costs and commission rates
// @Tags vip
// @Produce  json
// @Success 200 {object} utils.Response{data=vip.PricingResponse}
// @Router /vip/pricing [get]
func Pricing(c *gin.Context) {
	tiers := make([]PricingTier, 0, pricing.MaxVIPLevel)
	for level := 1; level <= pricing.MaxVIPLevel; level++ {
		tiers = append(tiers, PricingTier{
			Level:          level,
			Cost:           pricing.VIPCost(level),
			CommissionRate: pricing.CommissionRate(level),
		})
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Pricing fetched", PricingResponse{
		Tiers:               tiers,
		WithdrawalFee:       pricing.WithdrawalFee(),
		MinWithdrawalAmount: pricing.MinWithdrawalAmount(),
	}))
}

// SubmitSlip records a bank-transfer slip for admin review.
func SubmitSlip(c *gin.Context) {
	var input SlipRequest
	if !utils.BindAndValidate(c, &input) {
		return
	}

	acct, err := services.SubmitSlip(input.TelegramID, input.Level, input.SlipFileID)
	if err != nil {
		status, msg := slipErrorStatus(err)
		c.JSON(status, utils.NewErrorResponse(status, msg))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Slip submitted for review", account.NewAccountView(acct)))
}

// RequestUpgrade records a balance-funded upgrade request for admin review.
func RequestUpgrade(c *gin.Context) {
	var input UpgradeRequest
	if !utils.BindAndValidate(c, &input) {
		return
	}

	acct, err := services.RequestBalanceUpgrade(input.TelegramID, input.Level)
	if err != nil {
		status, msg := slipErrorStatus(err)
		c.JSON(status, utils.NewErrorResponse(status, msg))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Upgrade requested", account.NewAccountView(acct)))
}

// slipErrorStatus maps purchase sentinels to HTTP responses. Both purchase
// paths share the same guard set.
func slipErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrAccountNotFound):
		return http.StatusNotFound, "Account not found"
	case errors.Is(err, services.ErrAlreadyPending):
		return http.StatusConflict, "A request is already pending review"
	case errors.Is(err, services.ErrLevelCapReached):
		return http.StatusBadRequest, "Maximum VIP level reached"
	case errors.Is(err, services.ErrLevelOutOfOrder):
		return http.StatusBadRequest, "VIP levels must be purchased in order"
	case errors.Is(err, services.ErrInsufficientBalance):
		return http.StatusBadRequest, "Insufficient balance"
	case errors.Is(err, services.ErrOptimisticLock):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusInternalServerError, "Failed to process request"
	}
}
