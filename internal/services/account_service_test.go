package services

import (
	"referralvip-backend/internal/database"
	"referralvip-backend/internal/models"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}

	db.Migrator().DropTable(
		&models.Account{},
		&models.UpgradeRecord{},
		&models.Withdrawal{},
		&models.Transaction{},
		&models.AdminUser{},
	)
	err = db.AutoMigrate(
		&models.Account{},
		&models.UpgradeRecord{},
		&models.Withdrawal{},
		&models.Transaction{},
		&models.AdminUser{},
	)
	if err != nil {
		panic("failed to migrate database")
	}

	database.DB = db
	database.RedisClient = nil
}

func setupTestRedis() *miniredis.Miniredis {
	mr, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	database.RedisClient = redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	return mr
}

// seedAccount inserts an account directly, bypassing registration, so tests
// can start from any level and balance.
func seedAccount(t *testing.T, telegramID string, vipLevel int, balance float64) *models.Account {
	t.Helper()
	account := &models.Account{
		TelegramID:   telegramID,
		ReferralCode: "code-" + telegramID,
		IsVerified:   true,
		VIPLevel:     vipLevel,
		Balance:      balance,
	}
	if err := database.DB.Create(account).Error; err != nil {
		t.Fatalf("failed to seed account: %v", err)
	}
	return account
}

func reloadAccount(t *testing.T, id uint) models.Account {
	t.Helper()
	var account models.Account
	if err := database.DB.First(&account, id).Error; err != nil {
		t.Fatalf("failed to reload account: %v", err)
	}
	return account
}

func TestRegisterAccount(t *testing.T) {
	setupTestDB()

	account, err := RegisterAccount("1001", "alice", "")
	assert.NoError(t, err)
	assert.Equal(t, "1001", account.TelegramID)
	assert.Len(t, account.ReferralCode, 8)
	assert.False(t, account.IsVerified)
	assert.Equal(t, 0, account.VIPLevel)
	assert.Equal(t, 0.0, account.Balance)
}

func TestRegisterAccountDuplicate(t *testing.T) {
	setupTestDB()

	_, err := RegisterAccount("1001", "alice", "")
	assert.NoError(t, err)

	_, err = RegisterAccount("1001", "alice-again", "")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

// A row inserted by another writer still surfaces as ErrAlreadyRegistered:
// the unique index on telegram_id is the guard, not a prior read.
func TestRegisterAccountDuplicateRace(t *testing.T) {
	setupTestDB()

	seedAccount(t, "1001", 0, 0)

	_, err := RegisterAccount("1001", "alice", "")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestRegisterAccountStoresReferrerCode(t *testing.T) {
	setupTestDB()

	// The code does not have to exist yet; it is resolved at commission time.
	account, err := RegisterAccount("1002", "bob", "deadbeef")
	assert.NoError(t, err)
	assert.Equal(t, "deadbeef", account.ReferredBy)
}

func TestRegisterAccountUniqueCodes(t *testing.T) {
	setupTestDB()

	a, err := RegisterAccount("1001", "alice", "")
	assert.NoError(t, err)
	b, err := RegisterAccount("1002", "bob", "")
	assert.NoError(t, err)
	assert.NotEqual(t, a.ReferralCode, b.ReferralCode)
}

func TestVerifyAccount(t *testing.T) {
	setupTestDB()

	_, err := RegisterAccount("1001", "alice", "")
	assert.NoError(t, err)

	account, err := VerifyAccount("1001", "Alice Perera", "alice")
	assert.NoError(t, err)
	assert.True(t, account.IsVerified)
	assert.Equal(t, "Alice Perera", account.FullName)

	_, err = VerifyAccount("9999", "", "")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestUpdatePaymentDetails(t *testing.T) {
	setupTestDB()

	seeded := seedAccount(t, "1001", 0, 0)
	assert.False(t, seeded.HasPaymentDetails())

	account, err := UpdatePaymentDetails("1001", models.PaymentDetails{
		BankName:      "Commercial Bank",
		AccountNumber: "8001234567",
		AccountName:   "A. Perera",
		Branch:        "Colombo 03",
	})
	assert.NoError(t, err)
	assert.True(t, account.HasPaymentDetails())
	assert.Equal(t, "8001234567", account.PaymentDetails.AccountNumber)
}

func TestFindAccountByTelegramIDCaching(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()

	seedAccount(t, "1001", 2, 500)

	account, err := FindAccountByTelegramID("1001")
	assert.NoError(t, err)
	assert.Equal(t, 2, account.VIPLevel)
	assert.True(t, mr.Exists("account:1001"))

	// A mutation drops the cached snapshot.
	_, err = VerifyAccount("1001", "Alice", "")
	assert.NoError(t, err)
	assert.False(t, mr.Exists("account:1001"))

	_, err = FindAccountByTelegramID("9999")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestFindReferrals(t *testing.T) {
	setupTestDB()

	referrer := seedAccount(t, "1001", 1, 0)

	_, err := RegisterAccount("2001", "first", referrer.ReferralCode)
	assert.NoError(t, err)
	_, err = RegisterAccount("2002", "second", referrer.ReferralCode)
	assert.NoError(t, err)
	_, err = RegisterAccount("3001", "unrelated", "")
	assert.NoError(t, err)

	referrals, err := FindReferrals(referrer.ReferralCode)
	assert.NoError(t, err)
	assert.Len(t, referrals, 2)
	assert.Equal(t, "2001", referrals[0].TelegramID)
	assert.Equal(t, "2002", referrals[1].TelegramID)
}

func TestFindAccountsPagination(t *testing.T) {
	setupTestDB()

	seedAccount(t, "1001", 0, 0)
	seedAccount(t, "1002", 0, 0)
	seedAccount(t, "1003", 0, 0)

	accounts, total, err := FindAccounts(1, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, accounts, 2)

	accounts, total, err = FindAccounts(2, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, accounts, 1)
}
