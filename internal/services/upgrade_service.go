package services

import (
	"context"
	"fmt"
	"referralvip-backend/internal/database"
	"referralvip-backend/internal/events"
	"referralvip-backend/internal/models"
	"referralvip-backend/internal/pricing"
	"time"

	"gorm.io/gorm"
)

// RequestBalanceUpgrade records a request to buy the next VIP level from the
// account balance. Sufficiency is checked here and again at approval, since
// the balance can change while the request waits.
func RequestBalanceUpgrade(telegramID string, targetLevel int) (*models.Account, error) {
	var account *models.Account
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		account, err = lockAccountByTelegramID(tx, telegramID)
		if err != nil {
			return err
		}

		if account.VIPLevel >= pricing.MaxVIPLevel || targetLevel > pricing.MaxVIPLevel {
			return ErrLevelCapReached
		}
		if targetLevel != account.VIPLevel+1 {
			return ErrLevelOutOfOrder
		}
		if account.HasPendingUpgrade() {
			return ErrAlreadyPending
		}
		if account.Balance < pricing.VIPCost(targetLevel) {
			return ErrInsufficientBalance
		}

		now := time.Now()
		account.UpgradeTargetLevel = &targetLevel
		account.UpgradeRequestedAt = &now

		return saveAccount(tx, account)
	})
	if err != nil {
		return nil, err
	}

	invalidateAccountCache(telegramID)
	return account, nil
}

// ResolveBalanceUpgrade is the admin decision on a pending balance upgrade.
// Approval re-checks sufficiency, debits the cost and advances the level in
// one transaction; denial just clears the request.
//
// The request is cleared even when the approval-time sufficiency re-check
// fails, so the user has to resubmit after topping up. That mirrors the
// long-standing behavior users and admins expect; see the policy test before
// changing it.
func ResolveBalanceUpgrade(accountID uint, approve bool, approver string) (*models.Account, error) {
	var account *models.Account
	var targetLevel int
	var insufficientAtApproval bool

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		account, err = lockAccountByID(tx, accountID)
		if err != nil {
			return err
		}

		if !account.HasPendingUpgrade() {
			return ErrNoPendingRequest
		}

		targetLevel = *account.UpgradeTargetLevel
		account.UpgradeTargetLevel = nil
		account.UpgradeRequestedAt = nil

		if !approve {
			return saveAccount(tx, account)
		}

		cost := pricing.VIPCost(targetLevel)
		if account.Balance < cost {
			// Commit the cleared request, report the failure after.
			insufficientAtApproval = true
			return saveAccount(tx, account)
		}

		reason := fmt.Sprintf("VIP %d upgrade from balance", targetLevel)
		if err := applyBalanceChange(tx, account, -cost, models.TransactionTypeUpgradeDebit, reason, approver, 0); err != nil {
			return err
		}
		if err := advanceLevel(tx, account, targetLevel, approver); err != nil {
			return err
		}

		return saveAccount(tx, account)
	})
	if err != nil {
		return nil, err
	}

	invalidateAccountCache(account.TelegramID)

	if insufficientAtApproval {
		return nil, ErrInsufficientBalance
	}

	route := events.RouteUpgradeDenied
	if approve {
		route = events.RouteUpgradeApproved
	}
	events.Publish(context.Background(), route, events.RequestResolved{
		TelegramID: account.TelegramID,
		Approved:   approve,
		Level:      targetLevel,
		Balance:    account.Balance,
	})

	// Post-commit on purpose; a failed commission credit never rolls back
	// the upgrade.
	if approve && account.ReferredBy != "" {
		PayCommission(account.ReferredBy, targetLevel, account)
	}

	return account, nil
}

// FindAccountsWithPendingUpgrades lists accounts with a balance upgrade
// awaiting review.
func FindAccountsWithPendingUpgrades() ([]models.Account, error) {
	var accounts []models.Account
	err := database.DB.
		Where("upgrade_target_level IS NOT NULL").
		Order("upgrade_requested_at asc").
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}
