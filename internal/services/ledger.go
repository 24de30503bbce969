package services

import (
	"errors"
	"fmt"
	"referralvip-backend/internal/database"
	"referralvip-backend/internal/models"
	"time"

	"gorm.io/gorm"
)

// lockAccountByID reads an account inside tx for mutation. Concurrent writers
// are detected by the version check in saveAccount, not by a row lock, so the
// read itself stays portable across drivers.
func lockAccountByID(tx *gorm.DB, id uint) (*models.Account, error) {
	var account models.Account
	if err := tx.First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func lockAccountByTelegramID(tx *gorm.DB, telegramID string) (*models.Account, error) {
	var account models.Account
	err := tx.Where("telegram_id = ?", telegramID).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

// saveAccount persists a mutated account with an optimistic lock check: the
// update only matches the version the account was read at. A writer that lost
// the race affects zero rows and gets ErrOptimisticLock, rolling back its
// transaction.
func saveAccount(tx *gorm.DB, account *models.Account) error {
	currentVersion := account.Version
	account.Version = currentVersion + 1

	result := tx.Model(account).
		Where("version = ?", currentVersion).
		Select("*").Omit("created_at").
		Updates(account)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOptimisticLock
	}
	return nil
}

// applyBalanceChange credits (positive amount) or debits (negative amount) an
// account and records the matching ledger transaction. A debit that would
// push the balance negative is rejected with ErrInsufficientBalance before
// anything is written. The caller is responsible for saving the account.
func applyBalanceChange(tx *gorm.DB, account *models.Account, amount float64, txType models.TransactionType, reason, operator string, operatorID uint) error {
	if amount < 0 && account.Balance+amount < 0 {
		return ErrInsufficientBalance
	}

	balanceBefore := account.Balance
	account.Balance += amount

	transaction := models.Transaction{
		AccountID:     account.ID,
		Amount:        amount,
		BalanceBefore: balanceBefore,
		BalanceAfter:  account.Balance,
		Reason:        reason,
		Operator:      operator,
		OperatorID:    operatorID,
		Type:          txType,
		CreatedAt:     time.Now(),
	}
	transaction.Hash = transaction.GenerateHash(ledgerSecret())

	return tx.Create(&transaction).Error
}

// advanceLevel moves the account up exactly one tier and appends the audit
// record. Callers must have validated newLevel == VIPLevel+1 already.
func advanceLevel(tx *gorm.DB, account *models.Account, newLevel int, approver string) error {
	account.VIPLevel = newLevel
	return tx.Create(&models.UpgradeRecord{
		AccountID:  account.ID,
		Level:      newLevel,
		ApprovedAt: time.Now(),
		ApprovedBy: approver,
	}).Error
}

// hashSecret keys the HMAC over ledger rows. SetLedgerSecret replaces the
// placeholder once at startup; tests that never call it still get stable
// hashes.
var hashSecret = "default-secret"

// SetLedgerSecret installs the key used to hash ledger transactions. Empty
// input is ignored so a missing value cannot silently re-key the ledger.
func SetLedgerSecret(secret string) {
	if secret != "" {
		hashSecret = secret
	}
}

func ledgerSecret() string {
	return hashSecret
}

// invalidateAccountCache drops the cached account snapshot after a mutation.
func invalidateAccountCache(telegramID string) {
	if database.RedisClient != nil {
		cacheKey := fmt.Sprintf("account:%s", telegramID)
		database.RedisClient.Del(database.Ctx, cacheKey)
	}
}
