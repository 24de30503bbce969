package events

import (
	"context"
	"encoding/json"
	"referralvip-backend/pkg/logger"

	"go.uber.org/zap"
)

// LogPublisher writes events to the application log. It is the default sink
// when no broker is configured, which keeps single-process deployments (bot
// and backend in one binary) working without RabbitMQ.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (p *LogPublisher) Publish(_ context.Context, routingKey string, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	logger.Log.Info("domain event",
		zap.String("routing_key", routingKey),
		zap.ByteString("payload", payload),
	)
	return nil
}
