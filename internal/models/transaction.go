package models

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

type TransactionType string

const (
	TransactionTypeCommission       TransactionType = "commission"
	TransactionTypeUpgradeDebit     TransactionType = "upgrade_debit"
	TransactionTypeWithdrawalHold   TransactionType = "withdrawal_hold"
	TransactionTypeWithdrawalRefund TransactionType = "withdrawal_refund"
	TransactionTypeAdminAdjustment  TransactionType = "admin_adjustment"
)

// Transaction is one balance mutation on an Account. Every credit and debit
// the services perform writes exactly one row, so the ledger replays to the
// current balance.
type Transaction struct {
	ID            uint            `gorm:"primarykey"`
	CreatedAt     time.Time       `gorm:"precision:3"` // Millisecond precision
	AccountID     uint            `gorm:"index;not null"`
	Amount        float64         `gorm:"type:decimal(20,2);not null"` // signed: credits positive, debits negative
	BalanceBefore float64         `gorm:"type:decimal(20,2);not null"`
	BalanceAfter  float64         `gorm:"type:decimal(20,2);not null"`
	Reason        string          `gorm:"type:text"`
	Operator      string          `gorm:"type:varchar(100)"` // admin username or 'system'
	OperatorID    uint            `gorm:"index;default:0"`   // 0 for system
	Type          TransactionType `gorm:"type:varchar(50);index"`
	Hash          string          `gorm:"type:varchar(64);default:''"` // HMAC SHA256
}

// GenerateHash generates a tamper-proof hash for the transaction
func (t *Transaction) GenerateHash(secret string) string {
	data := fmt.Sprintf("%d|%d|%.2f|%.2f|%.2f|%s|%s|%s|%d",
		t.AccountID, t.CreatedAt.UnixNano(), t.Amount, t.BalanceBefore, t.BalanceAfter,
		t.Reason, t.Operator, t.Type, t.OperatorID)

	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
