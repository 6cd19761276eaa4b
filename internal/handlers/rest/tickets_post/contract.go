//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tickets_post_test
package tickets_post

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
	Issue(ctx context.Context, unitID string, courierID int64) (*entities.PaymentTicket, error)
}
