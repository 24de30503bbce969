package services

import (
	"referralvip-backend/internal/database"
	"referralvip-backend/internal/models"
	"referralvip-backend/internal/pricing"
	"testing"

	"github.com/stretchr/testify/assert"
)

func seedPayoutAccount(t *testing.T, telegramID string, balance float64) *models.Account {
	t.Helper()
	account := seedAccount(t, telegramID, 1, balance)
	err := database.DB.Model(account).Updates(map[string]interface{}{
		"payment_bank_name":      "Commercial Bank",
		"payment_account_number": "8001234567",
		"payment_account_name":   "A. Perera",
	}).Error
	if err != nil {
		t.Fatalf("failed to set payment details: %v", err)
	}
	return account
}

func TestRequestWithdrawalRequiresPaymentDetails(t *testing.T) {
	setupTestDB()

	seedAccount(t, "1001", 1, 5000)
	_, err := RequestWithdrawal("1001", 1300)
	assert.ErrorIs(t, err, ErrNoPaymentDetails)
}

func TestRequestWithdrawalBelowMinimum(t *testing.T) {
	setupTestDB()

	seedPayoutAccount(t, "1001", 5000)
	_, err := RequestWithdrawal("1001", pricing.MinWithdrawalAmount()-1)
	assert.ErrorIs(t, err, ErrBelowMinimum)
}

func TestRequestWithdrawalInsufficientForFee(t *testing.T) {
	setupTestDB()

	// 1500 covers the amount but not amount plus the flat fee.
	seedPayoutAccount(t, "1001", 1500)
	_, err := RequestWithdrawal("1001", 1300)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
}

func TestRequestWithdrawalHoldsAmountPlusFee(t *testing.T) {
	setupTestDB()

	seeded := seedPayoutAccount(t, "1001", 1600)

	w, err := RequestWithdrawal("1001", 1300)
	assert.NoError(t, err)
	assert.Equal(t, 1300.0, w.Amount)
	assert.Equal(t, pricing.WithdrawalFee(), w.Fee)
	assert.Equal(t, models.WithdrawalStatusPending, w.Status)
	assert.False(t, w.Processed())

	account := reloadAccount(t, seeded.ID)
	assert.Equal(t, 0.0, account.Balance)

	var hold models.Transaction
	err = database.DB.Where("account_id = ? AND type = ?", seeded.ID, models.TransactionTypeWithdrawalHold).First(&hold).Error
	assert.NoError(t, err)
	assert.Equal(t, -1600.0, hold.Amount)
}

func TestResolveWithdrawalApprove(t *testing.T) {
	setupTestDB()

	seeded := seedPayoutAccount(t, "1001", 2000)
	w, err := RequestWithdrawal("1001", 1300)
	assert.NoError(t, err)

	resolved, err := ResolveWithdrawal(seeded.ID, w.ID, true, "admin1")
	assert.NoError(t, err)
	assert.Equal(t, models.WithdrawalStatusApproved, resolved.Status)
	assert.NotNil(t, resolved.ProcessedAt)

	// Approval pays out externally; the held funds stay gone.
	account := reloadAccount(t, seeded.ID)
	assert.Equal(t, 400.0, account.Balance)
}

func TestResolveWithdrawalRejectRefunds(t *testing.T) {
	setupTestDB()

	seeded := seedPayoutAccount(t, "1001", 2000)
	w, err := RequestWithdrawal("1001", 1300)
	assert.NoError(t, err)

	resolved, err := ResolveWithdrawal(seeded.ID, w.ID, false, "admin1")
	assert.NoError(t, err)
	assert.Equal(t, models.WithdrawalStatusRejected, resolved.Status)

	// Rejection refunds both the amount and the fee.
	account := reloadAccount(t, seeded.ID)
	assert.Equal(t, 2000.0, account.Balance)

	var refund models.Transaction
	err = database.DB.Where("account_id = ? AND type = ?", seeded.ID, models.TransactionTypeWithdrawalRefund).First(&refund).Error
	assert.NoError(t, err)
	assert.Equal(t, 1600.0, refund.Amount)
}

func TestResolveWithdrawalTwice(t *testing.T) {
	setupTestDB()

	seeded := seedPayoutAccount(t, "1001", 2000)
	w, err := RequestWithdrawal("1001", 1300)
	assert.NoError(t, err)

	_, err = ResolveWithdrawal(seeded.ID, w.ID, true, "admin1")
	assert.NoError(t, err)
	_, err = ResolveWithdrawal(seeded.ID, w.ID, false, "admin1")
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
}

func TestResolveWithdrawalWrongAccount(t *testing.T) {
	setupTestDB()

	seedPayoutAccount(t, "1001", 2000)
	other := seedPayoutAccount(t, "1002", 2000)
	w, err := RequestWithdrawal("1001", 1300)
	assert.NoError(t, err)

	_, err = ResolveWithdrawal(other.ID, w.ID, true, "admin1")
	assert.ErrorIs(t, err, ErrWithdrawalNotFound)
}

func TestFindPendingWithdrawals(t *testing.T) {
	setupTestDB()

	a := seedPayoutAccount(t, "1001", 5000)
	b := seedPayoutAccount(t, "1002", 5000)

	wb, err := RequestWithdrawal("1002", 1300)
	assert.NoError(t, err)
	wa, err := RequestWithdrawal("1001", 1300)
	assert.NoError(t, err)

	pending, err := FindPendingWithdrawals()
	assert.NoError(t, err)
	assert.Len(t, pending, 2)
	assert.Equal(t, wb.ID, pending[0].Withdrawal.ID)
	assert.Equal(t, b.ID, pending[0].Account.ID)
	assert.Equal(t, wa.ID, pending[1].Withdrawal.ID)
	assert.Equal(t, a.ID, pending[1].Account.ID)

	// Processed withdrawals drop out of the pending queue.
	_, err = ResolveWithdrawal(b.ID, wb.ID, true, "admin1")
	assert.NoError(t, err)

	pending, err = FindPendingWithdrawals()
	assert.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.Equal(t, wa.ID, pending[0].Withdrawal.ID)
}

func TestFindWithdrawalsByAccount(t *testing.T) {
	setupTestDB()

	seeded := seedPayoutAccount(t, "1001", 10000)

	first, err := RequestWithdrawal("1001", 1300)
	assert.NoError(t, err)
	second, err := RequestWithdrawal("1001", 2000)
	assert.NoError(t, err)

	withdrawals, err := FindWithdrawalsByAccount(seeded.ID)
	assert.NoError(t, err)
	assert.Len(t, withdrawals, 2)
	assert.Equal(t, second.ID, withdrawals[0].ID)
	assert.Equal(t, first.ID, withdrawals[1].ID)
}
