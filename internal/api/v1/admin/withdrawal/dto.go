package withdrawal

import (
	"referralvip-backend/internal/models"
	"time"
)

type ResolveRequest struct {
	Approve *bool `json:"approve" binding:"required"`
}

// PendingWithdrawalItem carries the bank details alongside the request so the
// reviewer can make the payout without a second lookup.
type PendingWithdrawalItem struct {
	ID            uint      `json:"id"`
	AccountID     uint      `json:"account_id"`
	TelegramID    string    `json:"telegram_id"`
	FullName      string    `json:"full_name,omitempty"`
	Amount        float64   `json:"amount"`
	Fee           float64   `json:"fee"`
	RequestedAt   time.Time `json:"requested_at"`
	BankName      string    `json:"bank_name"`
	AccountNumber string    `json:"account_number"`
	AccountName   string    `json:"account_name"`
	Branch        string    `json:"branch,omitempty"`
}

type PendingWithdrawalListResponse struct {
	Withdrawals []PendingWithdrawalItem `json:"withdrawals"`
	Total       int                     `json:"total"`
}

type ResolveResponse struct {
	ID     uint                    `json:"id"`
	Status models.WithdrawalStatus `json:"status"`
	Amount float64                 `json:"amount"`
	Fee    float64                 `json:"fee"`
}
