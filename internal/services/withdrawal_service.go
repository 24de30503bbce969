package services

import (
	"context"
	"errors"
	"fmt"
	"referralvip-backend/internal/database"
	"referralvip-backend/internal/events"
	"referralvip-backend/internal/models"
	"referralvip-backend/internal/pricing"
	"time"

	"gorm.io/gorm"
)

// RequestWithdrawal deducts amount plus the flat fee immediately and appends
// a pending withdrawal. The funds are held, not merely reserved, so a
// rejection later must refund both.
func RequestWithdrawal(telegramID string, amount float64) (*models.Withdrawal, error) {
	var withdrawal *models.Withdrawal
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		account, err := lockAccountByTelegramID(tx, telegramID)
		if err != nil {
			return err
		}

		if !account.HasPaymentDetails() {
			return ErrNoPaymentDetails
		}
		if amount < pricing.MinWithdrawalAmount() {
			return ErrBelowMinimum
		}

		fee := pricing.WithdrawalFee()
		total := amount + fee
		reason := fmt.Sprintf("withdrawal hold: LKR %.2f + LKR %.2f fee", amount, fee)
		if err := applyBalanceChange(tx, account, -total, models.TransactionTypeWithdrawalHold, reason, "system", 0); err != nil {
			return err
		}

		withdrawal = &models.Withdrawal{
			AccountID:   account.ID,
			Amount:      amount,
			Fee:         fee,
			Status:      models.WithdrawalStatusPending,
			RequestedAt: time.Now(),
		}
		if err := tx.Create(withdrawal).Error; err != nil {
			return err
		}

		return saveAccount(tx, account)
	})
	if err != nil {
		return nil, err
	}

	invalidateAccountCache(telegramID)
	return withdrawal, nil
}

// ResolveWithdrawal is the admin decision on one withdrawal, addressed by its
// id within the account. Approval only stamps the record (the payout itself
// happens outside the system); rejection refunds amount plus fee.
func ResolveWithdrawal(accountID, withdrawalID uint, approve bool, approver string) (*models.Withdrawal, error) {
	var withdrawal models.Withdrawal
	var account *models.Account

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		account, err = lockAccountByID(tx, accountID)
		if err != nil {
			return err
		}

		err = tx.Where("id = ? AND account_id = ?", withdrawalID, accountID).First(&withdrawal).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrWithdrawalNotFound
			}
			return err
		}

		if withdrawal.Processed() {
			return ErrAlreadyProcessed
		}

		now := time.Now()
		withdrawal.ProcessedAt = &now
		if approve {
			withdrawal.Status = models.WithdrawalStatusApproved
		} else {
			withdrawal.Status = models.WithdrawalStatusRejected
			total := withdrawal.Amount + withdrawal.Fee
			reason := fmt.Sprintf("withdrawal #%d rejected, refund LKR %.2f", withdrawal.ID, total)
			if err := applyBalanceChange(tx, account, total, models.TransactionTypeWithdrawalRefund, reason, approver, 0); err != nil {
				return err
			}
			if err := saveAccount(tx, account); err != nil {
				return err
			}
		}

		return tx.Save(&withdrawal).Error
	})
	if err != nil {
		return nil, err
	}

	invalidateAccountCache(account.TelegramID)

	events.Publish(context.Background(), events.RouteWithdrawalProcessed, events.RequestResolved{
		TelegramID: account.TelegramID,
		Approved:   approve,
		Amount:     withdrawal.Amount,
		Balance:    account.Balance,
	})

	return &withdrawal, nil
}

// PendingWithdrawal pairs a withdrawal with its owning account for admin
// listings, which render the user's bank details next to the request.
type PendingWithdrawal struct {
	Withdrawal models.Withdrawal
	Account    models.Account
}

// FindPendingWithdrawals lists all unprocessed withdrawals across accounts in
// submission order.
func FindPendingWithdrawals() ([]PendingWithdrawal, error) {
	var withdrawals []models.Withdrawal
	err := database.DB.
		Where("status = ?", models.WithdrawalStatusPending).
		Order("requested_at asc").
		Find(&withdrawals).Error
	if err != nil {
		return nil, err
	}

	pending := make([]PendingWithdrawal, 0, len(withdrawals))
	for _, w := range withdrawals {
		var account models.Account
		if err := database.DB.First(&account, w.AccountID).Error; err != nil {
			return nil, err
		}
		pending = append(pending, PendingWithdrawal{Withdrawal: w, Account: account})
	}

	return pending, nil
}

// FindWithdrawalsByAccount returns an account's withdrawal log, newest first.
func FindWithdrawalsByAccount(accountID uint) ([]models.Withdrawal, error) {
	var withdrawals []models.Withdrawal
	err := database.DB.
		Where("account_id = ?", accountID).
		Order("requested_at desc").
		Find(&withdrawals).Error
	if err != nil {
		return nil, err
	}
	return withdrawals, nil
}
