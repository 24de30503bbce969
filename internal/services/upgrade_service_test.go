package services

import (
	"referralvip-backend/internal/database"
	"referralvip-backend/internal/models"
	"referralvip-backend/internal/pricing"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestBalanceUpgrade(t *testing.T) {
	setupTestDB()

	seedAccount(t, "1001", 1, 4000)

	account, err := RequestBalanceUpgrade("1001", 2)
	assert.NoError(t, err)
	assert.True(t, account.HasPendingUpgrade())
	assert.Equal(t, 2, *account.UpgradeTargetLevel)
	assert.NotNil(t, account.UpgradeRequestedAt)
	// Requesting only records intent; the debit happens at approval.
	assert.Equal(t, 4000.0, account.Balance)
}

func TestRequestBalanceUpgradeGuards(t *testing.T) {
	setupTestDB()

	seedAccount(t, "1001", 0, 100000)

	_, err := RequestBalanceUpgrade("1001", 2)
	assert.ErrorIs(t, err, ErrLevelOutOfOrder)

	seedAccount(t, "1002", pricing.MaxVIPLevel, 100000)
	_, err = RequestBalanceUpgrade("1002", pricing.MaxVIPLevel+1)
	assert.ErrorIs(t, err, ErrLevelCapReached)

	seedAccount(t, "1003", 0, 1999)
	_, err = RequestBalanceUpgrade("1003", 1)
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	_, err = RequestBalanceUpgrade("9999", 1)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestRequestBalanceUpgradeAlreadyPending(t *testing.T) {
	setupTestDB()

	seedAccount(t, "1001", 0, 5000)

	_, err := RequestBalanceUpgrade("1001", 1)
	assert.NoError(t, err)
	_, err = RequestBalanceUpgrade("1001", 1)
	assert.ErrorIs(t, err, ErrAlreadyPending)
}

func TestResolveBalanceUpgradeApprove(t *testing.T) {
	setupTestDB()

	referrer := seedAccount(t, "9001", 5, 0)
	purchaser := &models.Account{
		TelegramID:   "1001",
		ReferralCode: "code-1001",
		ReferredBy:   referrer.ReferralCode,
		IsVerified:   true,
		VIPLevel:     1,
		Balance:      4000,
	}
	assert.NoError(t, database.DB.Create(purchaser).Error)

	_, err := RequestBalanceUpgrade("1001", 2)
	assert.NoError(t, err)

	account, err := ResolveBalanceUpgrade(purchaser.ID, true, "admin1")
	assert.NoError(t, err)
	assert.Equal(t, 2, account.VIPLevel)
	assert.Equal(t, 0.0, account.Balance)
	assert.False(t, account.HasPendingUpgrade())

	history, err := GetUpgradeHistory(purchaser.ID)
	assert.NoError(t, err)
	assert.Len(t, history, 1)
	assert.Equal(t, 2, history[0].Level)

	var debit models.Transaction
	err = database.DB.Where("account_id = ? AND type = ?", purchaser.ID, models.TransactionTypeUpgradeDebit).First(&debit).Error
	assert.NoError(t, err)
	assert.Equal(t, -4000.0, debit.Amount)
	assert.Equal(t, 0.0, debit.BalanceAfter)

	credited := reloadAccount(t, referrer.ID)
	assert.Equal(t, pricing.CommissionRate(2), credited.Balance)
}

func TestResolveBalanceUpgradeDeny(t *testing.T) {
	setupTestDB()

	seeded := seedAccount(t, "1001", 0, 2000)
	_, err := RequestBalanceUpgrade("1001", 1)
	assert.NoError(t, err)

	account, err := ResolveBalanceUpgrade(seeded.ID, false, "admin1")
	assert.NoError(t, err)
	assert.Equal(t, 0, account.VIPLevel)
	assert.Equal(t, 2000.0, account.Balance)
	assert.False(t, account.HasPendingUpgrade())
}

// The request is cleared even when the balance no longer covers the cost at
// approval time: the user must top up and resubmit rather than have a stale
// request linger. Anything relying on that policy breaks loudly here.
func TestResolveBalanceUpgradeClearedOnFailedRecheck(t *testing.T) {
	setupTestDB()

	seeded := seedAccount(t, "1001", 0, 2000)
	_, err := RequestBalanceUpgrade("1001", 1)
	assert.NoError(t, err)

	// Balance drains between request and review.
	err = database.DB.Model(&models.Account{}).Where("id = ?", seeded.ID).Update("balance", 100).Error
	assert.NoError(t, err)

	_, err = ResolveBalanceUpgrade(seeded.ID, true, "admin1")
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	account := reloadAccount(t, seeded.ID)
	assert.False(t, account.HasPendingUpgrade())
	assert.Equal(t, 0, account.VIPLevel)
	assert.Equal(t, 100.0, account.Balance)
}

func TestResolveBalanceUpgradeNoPending(t *testing.T) {
	setupTestDB()

	seeded := seedAccount(t, "1001", 0, 5000)
	_, err := ResolveBalanceUpgrade(seeded.ID, true, "admin1")
	assert.ErrorIs(t, err, ErrNoPendingRequest)
}

func TestFindAccountsWithPendingUpgrades(t *testing.T) {
	setupTestDB()

	seedAccount(t, "1001", 0, 5000)
	seedAccount(t, "1002", 0, 5000)

	_, err := RequestBalanceUpgrade("1002", 1)
	assert.NoError(t, err)
	_, err = RequestBalanceUpgrade("1001", 1)
	assert.NoError(t, err)

	pending, err := FindAccountsWithPendingUpgrades()
	assert.NoError(t, err)
	assert.Len(t, pending, 2)
	assert.Equal(t, "1002", pending[0].TelegramID)
	assert.Equal(t, "1001", pending[1].TelegramID)
}
