package account

import (
	"errors"
	"fmt"
	"net/http"
	"referralvip-backend/internal/models"
	"referralvip-backend/internal/services"
	"referralvip-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// botUsername is rendered into referral links. Set once during route
// registration.
var botUsername string

func referralLink(code string) string {
	if botUsername == "" || code == "" {
		return ""
	}
	return fmt.Sprintf("https://t.me/%s?start=ref_%s", botUsername, code)
}

// Register godoc
// @Summary Register an account on first contact
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   input     body   RegisterRequest  true  "Register Request"
// @Success 201 {object} utils.Response{data=account.AccountResponse}
// @Failure 409 {object} utils.Response
// @Router /accounts/register [post]
func Register(c *gin.Context) {
	var input RegisterRequest
	if !utils.BindAndValidate(c, &input) {
		return
	}

	acct, err := services.RegisterAccount(input.TelegramID, input.Username, input.ReferredBy)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyRegistered) {
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, "Account already registered"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to register account"))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Account registered", newAccountResponse(acct, referralLink(acct.ReferralCode))))
}

// Verify marks the account verified after the transport has confirmed channel
// membership.
func Verify(c *gin.Context) {
	var input VerifyRequest
	if !utils.BindAndValidate(c, &input) {
		return
	}

	acct, err := services.VerifyAccount(input.TelegramID, input.FullName, input.Username)
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Account not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to verify account"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Account verified", newAccountResponse(acct, referralLink(acct.ReferralCode))))
}

// Get godoc
// @Summary Fetch an account profile
// @Tags accounts
// @Produce  json
// @Param   telegramId  path  string  true  "Telegram ID"
// @Success 200 {object} utils.Response{data=account.AccountResponse}
// @Failure 404 {object} utils.Response
// @Router /accounts/{telegramId} [get]
func Get(c *gin.Context) {
	acct, err := services.FindAccountByTelegramID(c.Param("telegramId"))
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Account not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch account"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Account fetched", newAccountResponse(&acct, referralLink(acct.ReferralCode))))
}

// UpdatePaymentDetails replaces the bank details withdrawals pay out to.
func UpdatePaymentDetails(c *gin.Context) {
	var input PaymentDetailsRequest
	if !utils.BindAndValidate(c, &input) {
		return
	}

	acct, err := services.UpdatePaymentDetails(c.Param("telegramId"), models.PaymentDetails{
		BankName:      input.BankName,
		AccountNumber: input.AccountNumber,
		AccountName:   input.AccountName,
		Branch:        input.Branch,
	})
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Account not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update payment details"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Payment details updated", newAccountResponse(acct, referralLink(acct.ReferralCode))))
}

// ListReferrals returns the accounts that registered with the caller's code.
func ListReferrals(c *gin.Context) {
	acct, err := services.FindAccountByTelegramID(c.Param("telegramId"))
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Account not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch account"))
		return
	}

	referrals, err := services.FindReferrals(acct.ReferralCode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch referrals"))
		return
	}

	items := make([]ReferralItem, 0, len(referrals))
	for _, r := range referrals {
		items = append(items, ReferralItem{
			FullName:   r.FullName,
			Username:   r.Username,
			VIPLevel:   r.VIPLevel,
			IsVerified: r.IsVerified,
			JoinedAt:   r.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Referrals fetched", ReferralListResponse{
		Referrals: items,
		Total:     len(items),
	}))
}

// ListWithdrawals returns the account's withdrawal history, newest first.
func ListWithdrawals(c *gin.Context) {
	acct, err := services.FindAccountByTelegramID(c.Param("telegramId"))
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Account not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch account"))
		return
	}

	withdrawals, err := services.FindWithdrawalsByAccount(acct.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch withdrawals"))
		return
	}

	items := make([]WithdrawalItem, 0, len(withdrawals))
	for _, w := range withdrawals {
		items = append(items, WithdrawalItem{
			ID:          w.ID,
			Amount:      w.Amount,
			Fee:         w.Fee,
			Status:      w.Status,
			RequestedAt: w.RequestedAt,
			ProcessedAt: w.ProcessedAt,
		})
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Withdrawals fetched", items))
}
