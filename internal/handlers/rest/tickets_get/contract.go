//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tickets_get_test
package tickets_get

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
	List(ctx context.Context, unitID, status string) ([]entities.PaymentTicket, error)
}
