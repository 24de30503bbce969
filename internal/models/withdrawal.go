package models

import "time"

// Withdrawal is one payout request. The amount plus fee is deducted from the
// account balance at submission time, so a pending withdrawal already holds
// its funds; rejection refunds amount and fee in full.
type Withdrawal struct {
	ID          uint             `gorm:"primarykey"`
	AccountID   uint             `gorm:"index;not null"`
	Amount      float64          `gorm:"type:decimal(20,2);not null"`
	Fee         float64          `gorm:"type:decimal(20,2);not null"`
	Status      WithdrawalStatus `gorm:"type:varchar(20);index;default:'pending'"`
	RequestedAt time.Time
	ProcessedAt *time.Time
}

// Processed reports whether an admin has already resolved this withdrawal.
func (w *Withdrawal) Processed() bool {
	return w.Status != WithdrawalStatusPending
}
