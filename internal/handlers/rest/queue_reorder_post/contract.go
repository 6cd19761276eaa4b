//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=queue_reorder_post_test
package queue_reorder_post

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
	Reorder(ctx context.Context, unitID string, ids []int64) (*entities.QueueView, error)
}
