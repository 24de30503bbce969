package withdrawal

import (
	"referralvip-backend/internal/models"
	"time"
)

type WithdrawRequest struct {
	TelegramID string  `json:"telegram_id" binding:"required"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
}

type WithdrawResponse struct {
	ID          uint                    `json:"id"`
	Amount      float64                 `json:"amount"`
	Fee         float64                 `json:"fee"`
	Status      models.WithdrawalStatus `json:"status"`
	RequestedAt time.Time               `json:"requested_at"`
}
