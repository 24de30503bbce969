package vip

type SlipRequest struct {
	TelegramID string `json:"telegram_id" binding:"required"`
	Level      int    `json:"level" binding:"required,min=1"`
	SlipFileID string `json:"slip_file_id" binding:"required"`
}

type UpgradeRequest struct {
	TelegramID string `json:"telegram_id" binding:"required"`
	Level      int    `json:"level" binding:"required,min=1"`
}

type PricingTier struct {
	Level          int     `json:"level"`
	Cost           float64 `json:"cost"`
	CommissionRate float64 `json:"commission_rate"`
}

type PricingResponse struct {
	Tiers               []PricingTier `json:"tiers"`
	WithdrawalFee       float64       `json:"withdrawal_fee"`
	MinWithdrawalAmount float64       `json:"min_withdrawal_amount"`
}
