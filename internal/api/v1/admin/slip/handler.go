package slip

import (
	"errors"
	"net/http"
	"referralvip-backend/internal/services"
	"referralvip-backend/internal/utils"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListPending godoc
// @Summary List pending slip purchases
// @Description Accounts whose uploaded slip awaits review, oldest first. Admin only.
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.Response{data=PendingSlipListResponse}
// @Failure 401 {object} utils.Response
// @Router /admin/slips [get]
func ListPending(c *gin.Context) {
	accounts, err := services.FindAccountsWithPendingSlips()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch pending slips"))
		return
	}

	items := make([]PendingSlipItem, 0, len(accounts))
	for _, a := range accounts {
		item := PendingSlipItem{
			AccountID:    a.ID,
			TelegramID:   a.TelegramID,
			Username:     a.Username,
			FullName:     a.FullName,
			CurrentLevel: a.VIPLevel,
		}
		if a.RequestedVIPLevel != nil {
			item.RequestedLevel = *a.RequestedVIPLevel
		}
		if a.SlipFileID != nil {
			item.SlipFileID = *a.SlipFileID
		}
		if a.SlipUploadedAt != nil {
			item.UploadedAt = *a.SlipUploadedAt
		}
		items = append(items, item)
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Pending slips retrieved successfully", PendingSlipListResponse{
		Slips: items,
		Total: len(items),
	}))
}

// Resolve godoc
// @Summary Approve or reject a pending slip
// @Description Approval advances the VIP level by one and pays referral commission. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Account ID"
// @Param body body ResolveRequest true "Decision"
// @Success 200 {object} utils.Response{data=ResolveResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/slips/{id}/resolve [post]
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

	account, err := services.ResolveSlip(uint(accountID), *input.Approve, approver)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Account not found"))
		case errors.Is(err, services.ErrNoPendingRequest):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "No pending slip for this account"))
		case errors.Is(err, services.ErrOptimisticLock):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to resolve slip"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Slip resolved", ResolveResponse{
		AccountID:  account.ID,
		TelegramID: account.TelegramID,
		Approved:   *input.Approve,
		VIPLevel:   account.VIPLevel,
	}))
}
