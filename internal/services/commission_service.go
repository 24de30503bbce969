package services

import (
	"context"
	"fmt"
	"referralvip-backend/internal/database"
	"referralvip-backend/internal/events"
	"referralvip-backend/internal/models"
	"referralvip-backend/internal/pricing"
	"referralvip-backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PayCommission credits the referrer after a referred user's level advance
// has been committed. A missing or unranked referrer is a no-op, never an
// error; a referrer at or above the reached level earns the full per-level
// rate, a lower-ranked (but VIP 1+) referrer earns the flat base rate.
//
// This runs in its own transaction, after the purchase. Failures here are
// logged and swallowed: the purchaser's upgrade must stand regardless.
func PayCommission(referrerCode string, reachedLevel int, purchaser *models.Account) {
	if referrerCode == "" {
		return
	}

	referrer, err := FindAccountByReferralCode(referrerCode)
	if err != nil {
		logger.Log.Warn("commission skipped: referrer not found",
			zap.String("referral_code", referrerCode),
			zap.String("purchaser", purchaser.TelegramID),
		)
		return
	}

	if referrer.VIPLevel < 1 {
		logger.Log.Info("commission skipped: referrer not ranked",
			zap.String("referral_code", referrerCode),
			zap.Int("referrer_vip", referrer.VIPLevel),
		)
		return
	}

	var commission float64
	if referrer.VIPLevel >= reachedLevel {
		commission = pricing.CommissionRate(reachedLevel)
	} else {
		commission = pricing.BaseCommissionRate()
	}
	if commission <= 0 {
		return
	}

	var credited *models.Account
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		credited, err = lockAccountByID(tx, referrer.ID)
		if err != nil {
			return err
		}

		reason := fmt.Sprintf("commission: %s reached VIP %d", purchaserName(purchaser), reachedLevel)
		if err := applyBalanceChange(tx, credited, commission, models.TransactionTypeCommission, reason, "system", 0); err != nil {
			return err
		}

		return saveAccount(tx, credited)
	})
	if err != nil {
		logger.Log.Error("commission credit failed",
			zap.String("referral_code", referrerCode),
			zap.Float64("amount", commission),
			zap.Error(err),
		)
		return
	}

	invalidateAccountCache(credited.TelegramID)

	logger.Log.Info("commission paid",
		zap.String("referrer", credited.TelegramID),
		zap.Float64("amount", commission),
		zap.Float64("new_balance", credited.Balance),
	)

	events.Publish(context.Background(), events.RouteCommissionPaid, events.CommissionPaid{
		ReferrerTelegramID: credited.TelegramID,
		PurchaserName:      purchaserName(purchaser),
		ReachedLevel:       reachedLevel,
		Amount:             commission,
		NewBalance:         credited.Balance,
	})
}

// purchaserName picks the friendliest available identifier for notification
// texts, the way the bot addresses users.
func purchaserName(account *models.Account) string {
	if account.FullName != "" {
		return account.FullName
	}
	if account.Username != "" {
		return account.Username
	}
	return account.TelegramID
}
