package account

import "time"

type AccountListItem struct {
	ID           uint      `json:"id"`
	TelegramID   string    `json:"telegram_id"`
	Username     string    `json:"username,omitempty"`
	FullName     string    `json:"full_name,omitempty"`
	ReferralCode string    `json:"referral_code"`
	ReferredBy   string    `json:"referred_by,omitempty"`
	IsVerified   bool      `json:"is_verified"`
	VIPLevel     int       `json:"vip_level"`
	Balance      float64   `json:"balance"`
	CreatedAt    time.Time `json:"created_at"`
}

type AccountListResponse struct {
	Accounts []AccountListItem `json:"accounts"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

type UpgradeHistoryItem struct {
	Level      int       `json:"level"`
	ApprovedAt time.Time `json:"approved_at"`
	ApprovedBy string    `json:"approved_by"`
}

type AdjustRequest struct {
	Amount float64 `json:"amount" binding:"required"`
	Reason string  `json:"reason" binding:"required"`
}

type AdjustResponse struct {
	AccountID uint    `json:"account_id"`
	Balance   float64 `json:"balance"`
}
