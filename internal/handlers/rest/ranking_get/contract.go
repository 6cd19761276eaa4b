//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ranking_get_test
package ranking_get

import (
	"context"
	"time"

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
	Ranking(ctx context.Context, unitID string, from time.Time) (*entities.Ranking, error)
}
