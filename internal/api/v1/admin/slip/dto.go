package slip

import "time"

type ResolveRequest struct {
	Approve *bool `json:"approve" binding:"required"`
}

type PendingSlipItem struct {
	AccountID      uint      `json:"account_id"`
	TelegramID     string    `json:"telegram_id"`
	Username       string    `json:"username,omitempty"`
	FullName       string    `json:"full_name,omitempty"`
	CurrentLevel   int       `json:"current_level"`
	RequestedLevel int       `json:"requested_level"`
	SlipFileID     string    `json:"slip_file_id"`
	UploadedAt     time.Time `json:"uploaded_at"`
}

type PendingSlipListResponse struct {
	Slips []PendingSlipItem `json:"slips"`
	Total int               `json:"total"`
}

type ResolveResponse struct {
	AccountID  uint   `json:"account_id"`
	TelegramID string `json:"telegram_id"`
	Approved   bool   `json:"approved"`
	VIPLevel   int    `json:"vip_level"`
}
