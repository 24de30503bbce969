package services

import (
	"context"
	"referralvip-backend/internal/database"
	"referralvip-backend/internal/events"
	"referralvip-backend/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recorderPublisher captures published events for assertions.
type recorderPublisher struct {
	keys   []string
	bodies []interface{}
}

func (r *recorderPublisher) Publish(_ context.Context, routingKey string, body interface{}) error {
	r.keys = append(r.keys, routingKey)
	r.bodies = append(r.bodies, body)
	return nil
}

func captureEvents(t *testing.T) *recorderPublisher {
	t.Helper()
	recorder := &recorderPublisher{}
	previous := events.Default
	events.Default = recorder
	t.Cleanup(func() { events.Default = previous })
	return recorder
}

func TestPayCommissionFullRate(t *testing.T) {
	setupTestDB()

	referrer := seedAccount(t, "9001", 5, 0)
	purchaser := seedAccount(t, "1001", 3, 0)

	// Referrer at or above the reached level earns the per-level rate.
	PayCommission(referrer.ReferralCode, 3, purchaser)

	credited := reloadAccount(t, referrer.ID)
	assert.Equal(t, 1500.0, credited.Balance)
}

func TestPayCommissionBaseRate(t *testing.T) {
	setupTestDB()

	referrer := seedAccount(t, "9001", 2, 0)
	purchaser := seedAccount(t, "1001", 5, 0)

	// Referrer below the reached level falls back to the flat base rate.
	PayCommission(referrer.ReferralCode, 5, purchaser)

	credited := reloadAccount(t, referrer.ID)
	assert.Equal(t, 1000.0, credited.Balance)
}

func TestPayCommissionSkipsUnrankedReferrer(t *testing.T) {
	setupTestDB()
	recorder := captureEvents(t)

	referrer := seedAccount(t, "9001", 0, 0)
	purchaser := seedAccount(t, "1001", 1, 0)

	PayCommission(referrer.ReferralCode, 1, purchaser)

	credited := reloadAccount(t, referrer.ID)
	assert.Equal(t, 0.0, credited.Balance)
	assert.Empty(t, recorder.keys)
}

func TestPayCommissionUnknownCode(t *testing.T) {
	setupTestDB()
	recorder := captureEvents(t)

	purchaser := seedAccount(t, "1001", 1, 0)

	// A dangling referral code is logged and ignored.
	PayCommission("ffffffff", 1, purchaser)
	assert.Empty(t, recorder.keys)
}

func TestPayCommissionEmitsEvent(t *testing.T) {
	setupTestDB()
	recorder := captureEvents(t)

	referrer := seedAccount(t, "9001", 5, 100)
	purchaser := seedAccount(t, "1001", 2, 0)
	purchaser.FullName = "Alice Perera"

	PayCommission(referrer.ReferralCode, 2, purchaser)

	assert.Equal(t, []string{events.RouteCommissionPaid}, recorder.keys)
	payload, ok := recorder.bodies[0].(events.CommissionPaid)
	assert.True(t, ok)
	assert.Equal(t, "9001", payload.ReferrerTelegramID)
	assert.Equal(t, "Alice Perera", payload.PurchaserName)
	assert.Equal(t, 2, payload.ReachedLevel)
	assert.Equal(t, 1000.0, payload.Amount)
	assert.Equal(t, 1100.0, payload.NewBalance)
}

func TestPayCommissionLedgerRow(t *testing.T) {
	setupTestDB()

	referrer := seedAccount(t, "9001", 1, 0)
	purchaser := seedAccount(t, "1001", 0, 0)
	purchaser.Username = "alice"

	PayCommission(referrer.ReferralCode, 1, purchaser)

	var tx models.Transaction
	err := database.DB.Where("account_id = ? AND type = ?", referrer.ID, models.TransactionTypeCommission).First(&tx).Error
	assert.NoError(t, err)
	assert.Equal(t, 1000.0, tx.Amount)
	assert.Equal(t, 0.0, tx.BalanceBefore)
	assert.Equal(t, 1000.0, tx.BalanceAfter)
	assert.Equal(t, "system", tx.Operator)
	assert.Contains(t, tx.Reason, "alice")
	assert.NotEmpty(t, tx.Hash)
}
