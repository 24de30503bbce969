package account

import (
	"referralvip-backend/internal/models"
	"time"
)

type RegisterRequest struct {
	TelegramID string `json:"telegram_id" binding:"required"`
	Username   string `json:"username"`
	ReferredBy string `json:"referred_by"`
}

type VerifyRequest struct {
	TelegramID string `json:"telegram_id" binding:"required"`
	FullName   string `json:"full_name"`
	Username   string `json:"username"`
}

type PaymentDetailsRequest struct {
	BankName      string `json:"bank_name" binding:"required"`
	AccountNumber string `json:"account_number" binding:"required"`
	AccountName   string `json:"account_name" binding:"required"`
	Branch        string `json:"branch"`
}

// AccountResponse is the bot-facing view of an account. Pending request
// details are included so the transport can render menus without extra
// round trips.
type AccountResponse struct {
	ID           uint    `json:"id"`
	TelegramID   string  `json:"telegram_id"`
	Username     string  `json:"username,omitempty"`
	FullName     string  `json:"full_name,omitempty"`
	ReferralCode string  `json:"referral_code"`
	ReferralLink string  `json:"referral_link,omitempty"`
	ReferredBy   string  `json:"referred_by,omitempty"`
	IsVerified   bool    `json:"is_verified"`
	VIPLevel     int     `json:"vip_level"`
	Balance      float64 `json:"balance"`

	PendingSlipLevel    *int `json:"pending_slip_level,omitempty"`
	PendingUpgradeLevel *int `json:"pending_upgrade_level,omitempty"`

	HasPaymentDetails bool `json:"has_payment_details"`
}

type ReferralListResponse struct {
	Referrals []ReferralItem `json:"referrals"`
	Total     int            `json:"total"`
}

// ReferralItem deliberately exposes only what the referrer may see about the
// people they invited.
type ReferralItem struct {
	FullName   string    `json:"full_name,omitempty"`
	Username   string    `json:"username,omitempty"`
	VIPLevel   int       `json:"vip_level"`
	IsVerified bool      `json:"is_verified"`
	JoinedAt   time.Time `json:"joined_at"`
}

type WithdrawalItem struct {
	ID          uint                    `json:"id"`
	Amount      float64                 `json:"amount"`
	Fee         float64                 `json:"fee"`
	Status      models.WithdrawalStatus `json:"status"`
	RequestedAt time.Time               `json:"requested_at"`
	ProcessedAt *time.Time              `json:"processed_at,omitempty"`
}

// NewAccountView builds the bot-facing response for an account, including
// its referral link. Shared with the purchase handlers, which return the
// updated account after recording a request.
func NewAccountView(a *models.Account) AccountResponse {
	return newAccountResponse(a, referralLink(a.ReferralCode))
}

func newAccountResponse(a *models.Account, referralLink string) AccountResponse {
	resp := AccountResponse{
		ID:                a.ID,
		TelegramID:        a.TelegramID,
		Username:          a.Username,
		FullName:          a.FullName,
		ReferralCode:      a.ReferralCode,
		ReferralLink:      referralLink,
		ReferredBy:        a.ReferredBy,
		IsVerified:        a.IsVerified,
		VIPLevel:          a.VIPLevel,
		Balance:           a.Balance,
		HasPaymentDetails: a.HasPaymentDetails(),
	}
	if a.HasPendingSlip() {
		resp.PendingSlipLevel = a.RequestedVIPLevel
	}
	if a.HasPendingUpgrade() {
		resp.PendingUpgradeLevel = a.UpgradeTargetLevel
	}
	return resp
}
