package services

import (
	"referralvip-backend/internal/database"
	"referralvip-backend/internal/models"

	"gorm.io/gorm"
)

// AdjustBalance is the admin escape hatch for manual corrections: a positive
// amount credits, a negative amount debits. Debits below the current balance
// fail with ErrInsufficientBalance like any other debit.
func AdjustBalance(accountID uint, amount float64, reason, operator string, operatorID uint) (*models.Account, error) {
	var account *models.Account
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		account, err = lockAccountByID(tx, accountID)
		if err != nil {
			return err
		}

		if err := applyBalanceChange(tx, account, amount, models.TransactionTypeAdminAdjustment, reason, operator, operatorID); err != nil {
			return err
		}

		return saveAccount(tx, account)
	})
	if err != nil {
		return nil, err
	}

	invalidateAccountCache(account.TelegramID)
	return account, nil
}
