package services

import (
	"context"
	"referralvip-backend/internal/database"
	"referralvip-backend/internal/events"
	"referralvip-backend/internal/models"
	"referralvip-backend/internal/pricing"
	"time"

	"gorm.io/gorm"
)

// SubmitSlip records a bank-transfer slip for the next VIP level. The money
// moved out-of-band, so the ledger is untouched; the request just waits for
// an admin to review the slip.
func SubmitSlip(telegramID string, requestedLevel int, slipFileID string) (*models.Account, error) {
	var account *models.Account
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		account, err = lockAccountByTelegramID(tx, telegramID)
		if err != nil {
			return err
		}

		if account.VIPLevel >= pricing.MaxVIPLevel || requestedLevel > pricing.MaxVIPLevel {
			return ErrLevelCapReached
		}
		if requestedLevel != account.VIPLevel+1 {
			return ErrLevelOutOfOrder
		}
		if account.HasPendingSlip() {
			return ErrAlreadyPending
		}

		now := time.Now()
		account.RequestedVIPLevel = &requestedLevel
		account.SlipFileID = &slipFileID
		account.SlipStatus = models.SlipStatusPending
		account.SlipUploadedAt = &now
		account.SlipProcessedAt = nil

		return saveAccount(tx, account)
	})
	if err != nil {
		return nil, err
	}

	invalidateAccountCache(telegramID)
	return account, nil
}

// ResolveSlip is the admin decision on a pending slip purchase. Approval
// advances the level by one and pays referral commission after the account
// transaction has committed; rejection just clears the request. Neither path
// touches the balance: the deposit happened outside the ledger.
func ResolveSlip(accountID uint, approve bool, approver string) (*models.Account, error) {
	var account *models.Account
	var reachedLevel int

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		account, err = lockAccountByID(tx, accountID)
		if err != nil {
			return err
		}

		if !account.HasPendingSlip() || account.RequestedVIPLevel == nil {
			return ErrNoPendingRequest
		}

		now := time.Now()
		if approve {
			reachedLevel = *account.RequestedVIPLevel
			if err := advanceLevel(tx, account, reachedLevel, approver); err != nil {
				return err
			}
			account.SlipStatus = models.SlipStatusApproved
		} else {
			account.SlipStatus = models.SlipStatusRejected
		}

		// Clear the slip reference either way; the file is not kept
		// around after processing.
		account.SlipFileID = nil
		account.RequestedVIPLevel = nil
		account.SlipProcessedAt = &now

		return saveAccount(tx, account)
	})
	if err != nil {
		return nil, err
	}

	invalidateAccountCache(account.TelegramID)

	route := events.RouteVIPRejected
	if approve {
		route = events.RouteVIPApproved
	}
	events.Publish(context.Background(), route, events.RequestResolved{
		TelegramID: account.TelegramID,
		Approved:   approve,
		Level:      reachedLevel,
		Balance:    account.Balance,
	})

	// Commission is deliberately outside the approval transaction: the level
	// advance stays committed even if crediting the referrer fails.
	if approve && account.ReferredBy != "" {
		PayCommission(account.ReferredBy, reachedLevel, account)
	}

	return account, nil
}

// FindAccountsWithPendingSlips lists accounts whose slip upload awaits review.
func FindAccountsWithPendingSlips() ([]models.Account, error) {
	var accounts []models.Account
	err := database.DB.
		Where("slip_status = ?", models.SlipStatusPending).
		Order("slip_uploaded_at asc").
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}
