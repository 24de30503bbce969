package services

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"referralvip-backend/internal/database"
	"referralvip-backend/internal/models"
	"time"

	"gorm.io/gorm"
)

// generateReferralCode returns 8 hex characters of cryptographic randomness.
// Collisions are vanishingly rare but still checked at registration.
func generateReferralCode() string {
	b := make([]byte, 4)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// RegisterAccount creates the account on first contact with the bot. The
// referral code is regenerated until it is unique across all accounts.
// referredBy may name a code that never existed; it is stored as-is and only
// resolved when commission is due. Duplicate registrations, including two
// racing ones, are caught by the unique index on telegram_id.
func RegisterAccount(telegramID, username, referredBy string) (*models.Account, error) {
	if telegramID == "" {
		return nil, errors.New("telegramID is required")
	}

	referralCode := generateReferralCode()
	for {
		var clash models.Account
		err := database.DB.Where("referral_code = ?", referralCode).First(&clash).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			break
		}
		if err != nil {
			return nil, err
		}
		referralCode = generateReferralCode()
	}

	account := &models.Account{
		TelegramID:   telegramID,
		Username:     username,
		ReferralCode: referralCode,
		ReferredBy:   referredBy,
		IsVerified:   false,
		VIPLevel:     0,
		Balance:      0,
	}

	if err := database.DB.Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyRegistered
		}
		return nil, err
	}

	return account, nil
}

// VerifyAccount marks the account verified once channel membership has been
// confirmed by the transport. Name fields are only updated when provided.
func VerifyAccount(telegramID, fullName, username string) (*models.Account, error) {
	var account *models.Account
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		account, err = lockAccountByTelegramID(tx, telegramID)
		if err != nil {
			return err
		}

		account.IsVerified = true
		if fullName != "" {
			account.FullName = fullName
		}
		if username != "" {
			account.Username = username
		}

		return saveAccount(tx, account)
	})
	if err != nil {
		return nil, err
	}

	invalidateAccountCache(telegramID)
	return account, nil
}

// UpdatePaymentDetails replaces the bank details withdrawals pay out to.
func UpdatePaymentDetails(telegramID string, details models.PaymentDetails) (*models.Account, error) {
	var account *models.Account
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		account, err = lockAccountByTelegramID(tx, telegramID)
		if err != nil {
			return err
		}

		account.PaymentDetails = details
		return saveAccount(tx, account)
	})
	if err != nil {
		return nil, err
	}

	invalidateAccountCache(telegramID)
	return account, nil
}

// FindAccountByTelegramID loads an account by its external identity, serving
// from the redis cache when possible.
func FindAccountByTelegramID(telegramID string) (models.Account, error) {
	cacheKey := fmt.Sprintf("account:%s", telegramID)
	if database.RedisClient != nil {
		val, err := database.RedisClient.Get(database.Ctx, cacheKey).Result()
		if err == nil {
			var account models.Account
			if err := json.Unmarshal([]byte(val), &account); err == nil {
				return account, nil
			}
		}
	}

	var account models.Account
	if err := database.DB.Where("telegram_id = ?", telegramID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account, ErrAccountNotFound
		}
		return account, err
	}

	if database.RedisClient != nil {
		if data, err := json.Marshal(account); err == nil {
			database.RedisClient.Set(database.Ctx, cacheKey, data, time.Hour)
		}
	}

	return account, nil
}

func FindAccountByID(id uint) (models.Account, error) {
	var account models.Account
	if err := database.DB.First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account, ErrAccountNotFound
		}
		return account, err
	}
	return account, nil
}

func FindAccountByReferralCode(code string) (models.Account, error) {
	var account models.Account
	if err := database.DB.Where("referral_code = ?", code).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account, ErrAccountNotFound
		}
		return account, err
	}
	return account, nil
}

// FindReferrals lists the accounts that registered with the given code.
func FindReferrals(referralCode string) ([]models.Account, error) {
	var accounts []models.Account
	if err := database.DB.Where("referred_by = ?", referralCode).Order("created_at asc").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// FindAccounts retrieves a paginated list of accounts for the admin console.
func FindAccounts(page, limit int) ([]models.Account, int64, error) {
	var accounts []models.Account
	var total int64

	offset := (page - 1) * limit

	if err := database.DB.Model(&models.Account{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := database.DB.Limit(limit).Offset(offset).Order("created_at desc").Find(&accounts).Error; err != nil {
		return nil, 0, err
	}

	return accounts, total, nil
}

// GetUpgradeHistory returns the append-only upgrade audit log for an account.
func GetUpgradeHistory(accountID uint) ([]models.UpgradeRecord, error) {
	var records []models.UpgradeRecord
	if err := database.DB.Where("account_id = ?", accountID).Order("approved_at asc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
