package services

import (
	"referralvip-backend/internal/database"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// Two writers read the same account state, then both try to save. The second
// save must fail on the version check instead of silently overwriting the
// first, otherwise interleaved debits could spend the same balance twice.
func TestSaveAccountConflictingWriters(t *testing.T) {
	setupTestDB()

	seeded := seedAccount(t, "1001", 0, 1000)

	first := reloadAccount(t, seeded.ID)
	second := reloadAccount(t, seeded.ID)

	first.Balance -= 100
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		return saveAccount(tx, &first)
	})
	assert.NoError(t, err)

	second.Balance -= 500
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		return saveAccount(tx, &second)
	})
	assert.ErrorIs(t, err, ErrOptimisticLock)

	current := reloadAccount(t, seeded.ID)
	assert.Equal(t, 900.0, current.Balance)
	assert.Equal(t, first.Version, current.Version)
}

func TestSaveAccountBumpsVersion(t *testing.T) {
	setupTestDB()

	seeded := seedAccount(t, "1001", 0, 500)
	account := reloadAccount(t, seeded.ID)
	readVersion := account.Version

	account.Balance = 0
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		return saveAccount(tx, &account)
	})
	assert.NoError(t, err)

	current := reloadAccount(t, seeded.ID)
	assert.Equal(t, readVersion+1, current.Version)
	assert.Equal(t, 0.0, current.Balance)
}
