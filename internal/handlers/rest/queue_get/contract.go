//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=queue_get_test
package queue_get

import (
	"context"

	"courierqueue/internal/entities"
	"courierqueue/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Queue(ctx context.Context, unitID string) (*entities.QueueView, error)
}
