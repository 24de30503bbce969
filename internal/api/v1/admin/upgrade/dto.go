package upgrade

import "time"

type ResolveRequest struct {
	Approve *bool `json:"approve" binding:"required"`
}

type PendingUpgradeItem struct {
	AccountID    uint      `json:"account_id"`
	TelegramID   string    `json:"telegram_id"`
	Username     string    `json:"username,omitempty"`
	FullName     string    `json:"full_name,omitempty"`
	CurrentLevel int       `json:"current_level"`
	TargetLevel  int       `json:"target_level"`
	Balance      float64   `json:"balance"`
	RequestedAt  time.Time `json:"requested_at"`
}

type PendingUpgradeListResponse struct {
	Upgrades []PendingUpgradeItem `json:"upgrades"`
	Total    int                  `json:"total"`
}

type ResolveResponse struct {
	AccountID  uint    `json:"account_id"`
	TelegramID string  `json:"telegram_id"`
	Approved   bool    `json:"approved"`
	VIPLevel   int     `json:"vip_level"`
	Balance    float64 `json:"balance"`
}
