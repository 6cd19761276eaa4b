//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"courierqueue/internal/entities"
	"courierqueue/pkg/logger"
)

type SettingsReader interface {
	Get(ctx context.Context, unitID string) (*entities.UnitSettings, error)
}

type WebhookSender interface {
	Send(ctx context.Context, url string, notice entities.DispatchWebhook) error
}

type MessageSender interface {
	Enabled() bool
	Send(ctx context.Context, phone, text string) error
}

type fanoutLogger interface {
	Warn(msg string, fields ...logger.Field)
}
