package account

import (
	"errors"
	"net/http"
	"referralvip-backend/internal/services"
	"referralvip-backend/internal/utils"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListAccounts godoc
// @Summary List all accounts
// @Description Get a paginated list of accounts. Admin only.
// @Tags admin
// @Produce json
// @Security Bearer
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} utils.Response{data=AccountListResponse}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /admin/accounts [get]
func ListAccounts(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid page number"))
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid limit number"))
		return
	}

	accounts, total, err := services.FindAccounts(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch accounts"))
		return
	}

	items := make([]AccountListItem, 0, len(accounts))
	for _, a := range accounts {
		items = append(items, AccountListItem{
			ID:           a.ID,
			TelegramID:   a.TelegramID,
			Username:     a.Username,
			FullName:     a.FullName,
			ReferralCode: a.ReferralCode,
			ReferredBy:   a.ReferredBy,
			IsVerified:   a.IsVerified,
			VIPLevel:     a.VIPLevel,
			Balance:      a.Balance,
			CreatedAt:    a.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Accounts retrieved successfully", AccountListResponse{
		Accounts: items,
		Total:    total,
		Page:     page,
		Limit:    limit,
	}))
}

// UpgradeHistory returns the append-only upgrade audit log for one account.
func UpgradeHistory(c *gin.Context) {
	accountID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid account ID"))
		return
	}

	if _, err := services.FindAccountByID(uint(accountID)); err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Account not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch account"))
		return
	}

	records, err := services.GetUpgradeHistory(uint(accountID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch upgrade history"))
		return
	}

	items := make([]UpgradeHistoryItem, 0, len(records))
	for _, r := range records {
		items = append(items, UpgradeHistoryItem{
			Level:      r.Level,
			ApprovedAt: r.ApprovedAt,
			ApprovedBy: r.ApprovedBy,
		})
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Upgrade history retrieved successfully", items))
}

// Adjust godoc
// @Summary Manually adjust an account balance
// @Description Credits or debits an account with an audited ledger entry. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Account ID"
// @Param body body AdjustRequest true "Adjustment"
// @Success 200 {object} utils.Response{data=AdjustResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/accounts/{id}/adjustments [post]
func Adjust(c *gin.Context) {
	accountID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid account ID"))
		return
	}

	var input AdjustRequest
	if !utils.BindAndValidate(c, &input) {
		return
	}

	operator := c.GetString("admin_username")
	if operator == "" {
		operator = "unknown"
	}
	operatorID := c.GetUint("admin_id")

	account, err := services.AdjustBalance(uint(accountID), input.Amount, input.Reason, operator, operatorID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Account not found"))
		case errors.Is(err, services.ErrInsufficientBalance):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Debit exceeds current balance"))
		case errors.Is(err, services.ErrOptimisticLock):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to adjust balance"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Balance adjusted", AdjustResponse{
		AccountID: account.ID,
		Balance:   account.Balance,
	}))
}
