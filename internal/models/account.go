package models

import "time"

// Account is one registered bot user. TelegramID is the external identity and
// ReferralCode is the unique token handed out for invite links; both are
// immutable after creation.
type Account struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Version   int `gorm:"default:1"`

	TelegramID string `gorm:"uniqueIndex;not null"`
	Username   string `gorm:"index"`
	FullName   string

	ReferralCode string `gorm:"uniqueIndex;not null"`
	ReferredBy   string `gorm:"index;default:null"` // referral code of the referrer, weak reference

	IsVerified bool    `gorm:"default:false"`
	VIPLevel   int     `gorm:"default:0"`
	Balance    float64 `gorm:"type:decimal(20,2);default:0"`

	// Pending slip-purchase request. At most one at a time; SlipStatus is
	// empty when no slip has ever been uploaded.
	RequestedVIPLevel *int
	SlipFileID        *string
	SlipStatus        SlipStatus `gorm:"type:varchar(20);index;default:''"`
	SlipUploadedAt    *time.Time
	SlipProcessedAt   *time.Time

	// Pending balance-funded upgrade request. At most one at a time.
	UpgradeTargetLevel *int `gorm:"index"`
	UpgradeRequestedAt *time.Time

	PaymentDetails PaymentDetails `gorm:"embedded;embeddedPrefix:payment_"`

	Withdrawals    []Withdrawal    `gorm:"foreignKey:AccountID"`
	UpgradeHistory []UpgradeRecord `gorm:"foreignKey:AccountID"`
}

// PaymentDetails is the bank account withdrawals are paid out to.
type PaymentDetails struct {
	BankName      string
	AccountNumber string
	AccountName   string
	Branch        string
}

// HasPaymentDetails reports whether the account can receive a payout.
// The account number is the only field the payout strictly needs.
func (a *Account) HasPaymentDetails() bool {
	return a.PaymentDetails.AccountNumber != ""
}

// HasPendingSlip reports whether a slip purchase is awaiting admin review.
func (a *Account) HasPendingSlip() bool {
	return a.SlipStatus == SlipStatusPending
}

// HasPendingUpgrade reports whether a balance upgrade is awaiting admin review.
func (a *Account) HasPendingUpgrade() bool {
	return a.UpgradeTargetLevel != nil
}

// UpgradeRecord is one entry of the append-only VIP upgrade audit log.
type UpgradeRecord struct {
	ID         uint `gorm:"primarykey"`
	AccountID  uint `gorm:"index;not null"`
	Level      int  `gorm:"not null"`
	ApprovedAt time.Time
	ApprovedBy string `gorm:"type:varchar(100)"`
}
