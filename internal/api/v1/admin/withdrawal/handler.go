package withdrawal

import (
	"errors"
	"net/http"
	"referralvip-backend/internal/services"
	"referralvip-backend/internal/utils"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListPending lists unprocessed withdrawals across all accounts, oldest first.
func ListPending(c *gin.Context) {
	pending, err := services.FindPendingWithdrawals()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch pending withdrawals"))
		return
	}

	items := make([]PendingWithdrawalItem, 0, len(pending))
	for _, p := range pending {
		items = append(items, PendingWithdrawalItem{
			ID:            p.Withdrawal.ID,
			AccountID:     p.Account.ID,
			TelegramID:    p.Account.TelegramID,
			FullName:      p.Account.FullName,
			Amount:        p.Withdrawal.Amount,
			Fee:           p.Withdrawal.Fee,
			RequestedAt:   p.Withdrawal.RequestedAt,
			BankName:      p.Account.PaymentDetails.BankName,
			AccountNumber: p.Account.PaymentDetails.AccountNumber,
			AccountName:   p.Account.PaymentDetails.AccountName,
			Branch:        p.Account.PaymentDetails.Branch,
		})
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Pending withdrawals retrieved successfully", PendingWithdrawalListResponse{
		Withdrawals: items,
		Total:       len(items),
	}))
}

// Resolve godoc
// @Summary Approve or reject a withdrawal
// @Description Rejection refunds the held amount plus fee. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Account ID"
// @Param withdrawalId path int true "Withdrawal ID"
// @Param body body ResolveRequest true "Decision"
// @Success 200 {object} utils.Response{data=ResolveResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /admin/accounts/{id}/withdrawals/{withdrawalId}/resolve [post]
func Resolve(c *gin.Context) {
	accountID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid account ID"))
		return
	}
	withdrawalID, err := strconv.Atoi(c.Param("withdrawalId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid withdrawal ID"))
		return
	}

	var input ResolveRequest
	if !utils.BindAndValidate(c, &input) {
		return
	}

	approver := c.GetString("admin_username")
	if approver == "" {
		approver = "unknown"
	}

	w, err := services.ResolveWithdrawal(uint(accountID), uint(withdrawalID), *input.Approve, approver)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Account not found"))
		case errors.Is(err, services.ErrWithdrawalNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Withdrawal not found"))
		case errors.Is(err, services.ErrAlreadyProcessed):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, "Withdrawal already processed"))
		case errors.Is(err, services.ErrOptimisticLock):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to resolve withdrawal"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Withdrawal resolved", ResolveResponse{
		ID:     w.ID,
		Status: w.Status,
		Amount: w.Amount,
		Fee:    w.Fee,
	}))
}
