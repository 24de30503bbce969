package events

import (
	"context"
	"referralvip-backend/pkg/logger"

	"go.uber.org/zap"
)

// Routing keys for the topic exchange.
const (
	RouteCommissionPaid      = "commission.paid"
	RouteVIPApproved         = "vip.approved"
	RouteVIPRejected         = "vip.rejected"
	RouteUpgradeApproved     = "upgrade.approved"
	RouteUpgradeDenied       = "upgrade.denied"
	RouteWithdrawalProcessed = "withdrawal.processed"
)

// CommissionPaid is emitted after a referrer's balance has been credited.
type CommissionPaid struct {
	ReferrerTelegramID string  `json:"referrer_telegram_id"`
	PurchaserName      string  `json:"purchaser_name"`
	ReachedLevel       int     `json:"reached_level"`
	Amount             float64 `json:"amount"`
	NewBalance         float64 `json:"new_balance"`
}

// RequestResolved is emitted when an admin resolves a slip purchase, balance
// upgrade or withdrawal. The subscriber renders and delivers the user-facing
// message.
type RequestResolved struct {
	TelegramID string  `json:"telegram_id"`
	Approved   bool    `json:"approved"`
	Level      int     `json:"level,omitempty"`
	Amount     float64 `json:"amount,omitempty"`
	Balance    float64 `json:"balance"`
}

// Publisher delivers domain events to whoever renders notifications. Delivery
// is fire-and-forget: the caller logs errors and never rolls back.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, body interface{}) error
}

// Default is the process-wide publisher, a log-only sink until main wires a
// broker. Tests swap in a recorder.
var Default Publisher = NewLogPublisher()

// Publish sends an event through the default publisher, swallowing errors.
// Notification delivery must never fail a committed state transition.
func Publish(ctx context.Context, routingKey string, body interface{}) {
	if err := Default.Publish(ctx, routingKey, body); err != nil {
		logger.Log.Warn("event publish failed",
			zap.String("routing_key", routingKey),
			zap.Error(err),
		)
	}
}
