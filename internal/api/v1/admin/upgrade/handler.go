package upgrade

import (
	"errors"
	"net/http"
	"referralvip-backend/internal/services"
	"referralvip-backend/internal/utils"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListPending lists balance-funded upgrade requests awaiting review, oldest
// first. The current balance is included so the reviewer can see whether the
// request is still covered.
func ListPending(c *gin.Context) {
	accounts, err := services.FindAccountsWithPendingUpgrades()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch pending upgrades"))
		return
	}

	items := make([]PendingUpgradeItem, 0, len(accounts))
	for _, a := range accounts {
		item := PendingUpgradeItem{
			AccountID:    a.ID,
			TelegramID:   a.TelegramID,
			Username:     a.Username,
			FullName:     a.FullName,
			CurrentLevel: a.VIPLevel,
			Balance:      a.Balance,
		}
		if a.UpgradeTargetLevel != nil {
			item.TargetLevel = *a.UpgradeTargetLevel
		}
		if a.UpgradeRequestedAt != nil {
			item.RequestedAt = *a.UpgradeRequestedAt
		}
		items = append(items, item)
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Pending upgrades retrieved successfully", PendingUpgradeListResponse{
		Upgrades: items,
		Total:    len(items),
	}))
}

// Resolve godoc
// @Summary Approve or deny a pending balance upgrade
// @Description Approval debits the cost and advances the level. The request is
// cleared even when the balance no longer covers the cost at approval time.
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Account ID"
// @Param body body ResolveRequest true "Decision"
// @Success 200 {object} utils.Response{data=ResolveResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /admin/upgrades/{id}/resolve [post]
func Resolve(c *gin.Context) {
	accountID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid account ID"))
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

	account, err := services.ResolveBalanceUpgrade(uint(accountID), *input.Approve, approver)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Account not found"))
		case errors.Is(err, services.ErrNoPendingRequest):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "No pending upgrade for this account"))
		case errors.Is(err, services.ErrInsufficientBalance):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, "Balance no longer covers the upgrade; request cleared"))
		case errors.Is(err, services.ErrOptimisticLock):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to resolve upgrade"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Upgrade resolved", ResolveResponse{
		AccountID:  account.ID,
		TelegramID: account.TelegramID,
		Approved:   *input.Approve,
		VIPLevel:   account.VIPLevel,
		Balance:    account.Balance,
	}))
}
